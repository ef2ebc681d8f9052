package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
)

// RunInfo is the run listing row.
type RunInfo struct {
	RunID       int64
	CreatedAt   time.Time
	SourcePath  string
	Language    string
	PostCount   int
	MetricCount int
}

// InsertRun stores a parsed report as one run, with its metrics, posts
// and hashtags, in a single transaction.
func (db *DB) InsertRun(report *models.Report) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`
		INSERT INTO runs (source_path, language, language_confidence, post_count)
		VALUES (?, ?, ?, ?)
	`, report.SourcePath, report.Language, report.LanguageConfidence, len(report.Posts))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for label, value := range report.Metrics {
		if _, err := tx.Exec(`
			INSERT INTO run_metrics (run_id, label, value) VALUES (?, ?, ?)
		`, runID, label, float64(value)); err != nil {
			return 0, fmt.Errorf("failed to insert metric %s: %w", label, err)
		}
	}

	for i, post := range report.Posts {
		if _, err := tx.Exec(`
			INSERT INTO run_posts (run_id, position, when_label, impressions, likes, comments, snippet)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, runID, i, post.When, numberOrNull(post.Impressions), numberOrNull(post.Likes), numberOrNull(post.Comments), post.Snippet); err != nil {
			return 0, fmt.Errorf("failed to insert post %d: %w", i, err)
		}
	}

	for i, tag := range report.Hashtags {
		if _, err := tx.Exec(`
			INSERT INTO run_hashtags (run_id, position, tag) VALUES (?, ?, ?)
		`, runID, i, tag); err != nil {
			return 0, fmt.Errorf("failed to insert hashtag %s: %w", tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// GetRun returns listing info for one run.
func (db *DB) GetRun(runID int64) (*RunInfo, error) {
	info := &RunInfo{}
	err := db.QueryRow(`
		SELECT r.run_id, r.created_at, r.source_path, r.language, r.post_count,
		       (SELECT COUNT(*) FROM run_metrics m WHERE m.run_id = r.run_id)
		FROM runs r WHERE r.run_id = ?
	`, runID).Scan(&info.RunID, &info.CreatedAt, &info.SourcePath, &info.Language, &info.PostCount, &info.MetricCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return info, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunInfo, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT r.run_id, r.created_at, r.source_path, r.language, r.post_count,
		       (SELECT COUNT(*) FROM run_metrics m WHERE m.run_id = r.run_id)
		FROM runs r ORDER BY r.run_id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		if err := rows.Scan(&info.RunID, &info.CreatedAt, &info.SourcePath, &info.Language, &info.PostCount, &info.MetricCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

// LatestRunID returns the most recently inserted run.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("no runs stored yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// GetRunReport reconstructs the stored report for a run.
func (db *DB) GetRunReport(runID int64) (*models.Report, error) {
	info, err := db.GetRun(runID)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Metrics:    make(map[string]models.Number),
		SourcePath: info.SourcePath,
		Language:   info.Language,
	}

	rows, err := db.Query("SELECT label, value FROM run_metrics WHERE run_id = ? ORDER BY metric_id", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var label string
		var value float64
		if err := rows.Scan(&label, &value); err != nil {
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		report.Metrics[label] = models.Number(value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	report.Posts, err = db.GetRunPosts(runID)
	if err != nil {
		return nil, err
	}

	tagRows, err := db.Query("SELECT tag FROM run_hashtags WHERE run_id = ? ORDER BY position", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hashtags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var tag string
		if err := tagRows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan hashtag: %w", err)
		}
		report.Hashtags = append(report.Hashtags, tag)
	}
	return report, tagRows.Err()
}

// GetRunPosts returns a run's post records in stored document order
// (most recent first).
func (db *DB) GetRunPosts(runID int64) ([]models.PostRecord, error) {
	rows, err := db.Query(`
		SELECT when_label, impressions, likes, comments, snippet
		FROM run_posts WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	defer rows.Close()

	var posts []models.PostRecord
	for rows.Next() {
		var post models.PostRecord
		var impressions, likes, comments sql.NullFloat64
		if err := rows.Scan(&post.When, &impressions, &likes, &comments, &post.Snippet); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		post.Impressions = nullToNumber(impressions)
		post.Likes = nullToNumber(likes)
		post.Comments = nullToNumber(comments)
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func numberOrNull(n *models.Number) interface{} {
	if n == nil {
		return nil
	}
	return float64(*n)
}

func nullToNumber(v sql.NullFloat64) *models.Number {
	if !v.Valid {
		return nil
	}
	n := models.Number(v.Float64)
	return &n
}
