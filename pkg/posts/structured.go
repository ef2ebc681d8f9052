package posts

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/doc"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/numparse"
)

// Selectors for the repeated mini-analytics cards on the creator
// content page. Class names drift with frontend releases; the caller's
// free-text fallback covers the drift.
const (
	containerSelector = "li.member-analytics-addon-entity-list__item"
	titleSelector     = ".member-analytics-addon-entity-list__title"
	labelSelector     = ".member-analytics-addon-entity-list__label"
)

var impressionsLabel = regexp.MustCompile(`(?i)(impressions?|visualizzazioni)`)

// Structured parses repeated markup blocks, each holding a title
// element with the number and a label element naming the metric. Only
// the impressions label family is recognized; other card types are
// intentionally ignored. A block missing either element is skipped
// without aborting the scan.
type Structured struct{}

func (s *Structured) Parse(document string) []models.PostRecord {
	if !doc.IsMarkup(document) {
		return nil
	}

	root, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil
	}

	var records []models.PostRecord
	root.Find(containerSelector).Each(func(_ int, card *goquery.Selection) {
		label := strings.TrimSpace(card.Find(labelSelector).First().Text())
		title := strings.TrimSpace(card.Find(titleSelector).First().Text())
		if label == "" || title == "" {
			return
		}
		if !impressionsLabel.MatchString(label) {
			return
		}

		// WindowCandidates already enforces the 1B implausibility cap,
		// so an absurd title discards the record here.
		candidates := numparse.WindowCandidates([]string{title})
		if len(candidates) == 0 {
			return
		}

		impressions := models.Number(candidates[0])
		records = append(records, models.PostRecord{Impressions: &impressions})
	})
	return records
}
