// Package models defines the data structures shared by the extraction
// core and the CLI layer.
package models

// PostRecord is one post as segmented out of an analytics document.
// Every metric field is independently optional: a missing impressions
// figure does not block likes or comments from being captured.
type PostRecord struct {
	// When is the free-text relative time label ("2d", "3 settimane fa"),
	// empty when the source line carried none.
	When        string  `json:"when,omitempty" yaml:"when,omitempty"`
	Impressions *Number `json:"impressions,omitempty" yaml:"impressions,omitempty"`
	Likes       *Number `json:"likes,omitempty" yaml:"likes,omitempty"`
	Comments    *Number `json:"comments,omitempty" yaml:"comments,omitempty"`
	// Snippet is the first content line after the post sentinel,
	// truncated to 180 characters.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// Report is the structured result of parsing one analytics page
// (plus any embedded-frame documents).
type Report struct {
	// Metrics maps canonical label names (Impressions, Reactions, ...)
	// to the single value selected for each. Labels that were not found
	// are absent, never zero-filled.
	Metrics map[string]Number `json:"metrics" yaml:"metrics"`
	// Posts are ordered as discovered in the source document,
	// most-recent-first.
	Posts    []PostRecord `json:"posts,omitempty" yaml:"posts,omitempty"`
	Hashtags []string     `json:"hashtags,omitempty" yaml:"hashtags,omitempty"`

	// Display metadata, filled by the CLI layer.
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	SourcePath         string  `json:"source_path,omitempty" yaml:"source_path,omitempty"`
}

// ReportConfig holds runtime configuration for the report command.
// All values come from CLI flags, not external config files.
type ReportConfig struct {
	InputPath  string
	FramePaths []string
	PostCount  int
}
