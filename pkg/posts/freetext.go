package posts

import (
	"regexp"
	"strings"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/doc"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/numparse"
)

// postWindow bounds the forward scan from a post sentinel. A rendered
// post block with its metrics fits comfortably in a dozen lines.
const postWindow = 12

// snippetMax caps the free-text snippet length.
const snippetMax = 180

var (
	// sentinelPattern marks "this is one published post" in either
	// locale.
	sentinelPattern = regexp.MustCompile(`(?i)(you\s+(re)?posted|posted\s+this|hai\s+pubblicato|post\s+pubblicato)`)

	freeImpressions = regexp.MustCompile(`(?i)(impressions?|visualizzazioni)`)
	freeLikes       = regexp.MustCompile(`(?i)(reactions?|reazioni|likes?|mi\s+piace)`)
	freeComments    = regexp.MustCompile(`(?i)(comments?|commenti)`)
)

// FreeText segments a flattened text dump into post records. Each
// sentinel line opens a record; its metrics are searched independently
// in a bounded forward window, so a missing likes figure never blocks
// impressions or comments from being captured.
type FreeText struct{}

func (f *FreeText) Parse(document string) []models.PostRecord {
	lines := doc.Lines(document)

	var records []models.PostRecord
	for i, line := range lines {
		if !sentinelPattern.MatchString(line) {
			continue
		}

		record := models.PostRecord{}

		// "Posted · 2w" style lines carry a relative-time fragment
		// after the bullet glyph.
		if idx := strings.Index(line, "·"); idx >= 0 {
			record.When = strings.TrimSpace(line[idx+len("·"):])
		}

		if i+1 < len(lines) {
			record.Snippet = truncateSnippet(lines[i+1], snippetMax)
		}

		end := i + 1 + postWindow
		if end > len(lines) {
			end = len(lines)
		}
		for j := i + 1; j < end; j++ {
			scanMetricLine(lines[j], &record)
		}

		records = append(records, record)
	}
	return records
}

// scanMetricLine fills any still-missing metric the line labels. Each
// field only accepts the first number found for it.
func scanMetricLine(line string, record *models.PostRecord) {
	if record.Impressions == nil && freeImpressions.MatchString(line) {
		if n, ok := firstNumber(line); ok {
			record.Impressions = &n
		}
	}
	if record.Likes == nil && freeLikes.MatchString(line) {
		if n, ok := firstNumber(line); ok {
			record.Likes = &n
		}
	}
	if record.Comments == nil && freeComments.MatchString(line) {
		if n, ok := firstNumber(line); ok {
			record.Comments = &n
		}
	}
}

func firstNumber(line string) (models.Number, bool) {
	candidates := numparse.WindowCandidates([]string{line})
	if len(candidates) == 0 {
		return 0, false
	}
	return models.Number(candidates[0]), true
}
