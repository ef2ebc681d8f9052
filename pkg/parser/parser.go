// Package parser assembles a full analytics report from one or more
// raw documents: labeled totals, per-post records and hashtags.
package parser

import (
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/doc"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/hashtags"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/metrics"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/posts"
)

// Request carries one parse call's input: the main document, any
// embedded-frame documents, and the requested post count.
type Request struct {
	Document  string
	Frames    []string
	PostCount int
	// Rules overrides the built-in label table; nil uses the default.
	Rules []metrics.Rule
}

type Parser struct{}

// Parse runs the extraction pipeline. Metric maps are built once per
// document and never merged across documents: the first document whose
// scan yields any labels supplies them all. Post records likewise come
// from the first document that segments into posts; hashtags are the
// case-insensitive union across every document, first occurrence
// winning.
func (p *Parser) Parse(req Request) *models.Report {
	rules := req.Rules
	if rules == nil {
		rules = metrics.DefaultRules()
	}

	documents := append([]string{req.Document}, req.Frames...)
	report := &models.Report{Metrics: map[string]models.Number{}}

	for _, document := range documents {
		if len(report.Metrics) == 0 {
			if found := metrics.Locate(rules, doc.Lines(document)); len(found) > 0 {
				report.Metrics = found
			}
		}
		if len(report.Posts) == 0 {
			report.Posts = posts.Extract(document, req.PostCount)
		}
	}

	seen := make(map[string]struct{})
	for _, document := range documents {
		for _, tag := range hashtags.Extract(document) {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			report.Hashtags = append(report.Hashtags, tag)
		}
	}

	return report
}
