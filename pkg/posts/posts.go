// Package posts segments a long analytics document into discrete post
// records. Two strategies produce the same record shape: a structured
// goquery pass over known markup blocks, and a free-text pass over
// flattened lines. Callers try structured first and fall back when it
// yields nothing, since saved pages arrive both as raw HTML and as
// clipboard text dumps.
package posts

import (
	"math"
	"unicode/utf8"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
)

// Parser segments one document into post records.
type Parser interface {
	Parse(document string) []models.PostRecord
}

// Extract runs the structured strategy with free-text fallback and
// truncates to the requested post count.
func Extract(document string, limit int) []models.PostRecord {
	records := (&Structured{}).Parse(document)
	if len(records) == 0 {
		records = (&FreeText{}).Parse(document)
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

// Metric identifies one per-post series.
type Metric string

const (
	MetricLikes    Metric = "likes"
	MetricComments Metric = "comments"
	MetricViews    Metric = "views"
)

// Series assembles one metric across post records into an oldest-first
// series. Records arrive most-recent-first, so the first limit records
// are taken and then reversed; a missing field becomes a NaN sample for
// the cleaner to fill.
func Series(records []models.PostRecord, metric Metric, limit int) []float64 {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	series := make([]float64, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		var field *models.Number
		switch metric {
		case MetricLikes:
			field = records[i].Likes
		case MetricComments:
			field = records[i].Comments
		case MetricViews:
			field = records[i].Impressions
		}
		if field == nil {
			series = append(series, math.NaN())
			continue
		}
		series = append(series, float64(*field))
	}
	return series
}

func truncateSnippet(line string, max int) string {
	if utf8.RuneCountInString(line) <= max {
		return line
	}
	return string([]rune(line)[:max]) + "…"
}
