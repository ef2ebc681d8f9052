package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per parsed analytics document
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source_path TEXT,
    language TEXT,
    language_confidence REAL,
    post_count INTEGER NOT NULL DEFAULT 0
);

-- Selected labeled totals for a run
CREATE TABLE IF NOT EXISTS run_metrics (
    metric_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    label TEXT NOT NULL,
    value REAL NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, label)
);

CREATE INDEX IF NOT EXISTS idx_metrics_run ON run_metrics(run_id);
CREATE INDEX IF NOT EXISTS idx_metrics_label ON run_metrics(label);

-- Per-post records in document order (most recent first)
CREATE TABLE IF NOT EXISTS run_posts (
    post_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    when_label TEXT,
    impressions REAL,
    likes REAL,
    comments REAL,
    snippet TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_posts_run ON run_posts(run_id);

-- Hashtags seen in a run, in first-occurrence order
CREATE TABLE IF NOT EXISTS run_hashtags (
    hashtag_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    tag TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_hashtags_run ON run_hashtags(run_id);
`
