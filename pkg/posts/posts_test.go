package posts

import (
	"math"
	"strings"
	"testing"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
)

const freeTextPage = `
Analytics
You posted this · 2w
Excited to announce our new release, read all about it below
1,234 impressions
56 reactions
7 comments
other chrome
You posted this · 1w
Short update
2.5k impressions
+12%
You posted this
No metrics for this one yet
`

func TestFreeTextParse(t *testing.T) {
	records := (&FreeText{}).Parse(freeTextPage)
	if len(records) != 3 {
		t.Fatalf("Parse() returned %d records, want 3", len(records))
	}

	first := records[0]
	if first.When != "2w" {
		t.Errorf("records[0].When = %q, want \"2w\"", first.When)
	}
	if first.Snippet != "Excited to announce our new release, read all about it below" {
		t.Errorf("records[0].Snippet = %q", first.Snippet)
	}
	if first.Impressions == nil || *first.Impressions != 1234 {
		t.Errorf("records[0].Impressions = %v, want 1234", first.Impressions)
	}
	if first.Likes == nil || *first.Likes != 56 {
		t.Errorf("records[0].Likes = %v, want 56", first.Likes)
	}
	if first.Comments == nil || *first.Comments != 7 {
		t.Errorf("records[0].Comments = %v, want 7", first.Comments)
	}

	second := records[1]
	if second.Impressions == nil || *second.Impressions != 2500 {
		t.Errorf("records[1].Impressions = %v, want 2500", second.Impressions)
	}
	if second.Likes != nil {
		t.Errorf("records[1].Likes = %v, want nil", second.Likes)
	}

	third := records[2]
	if third.When != "" {
		t.Errorf("records[2].When = %q, want empty", third.When)
	}
	if third.Impressions != nil || third.Likes != nil || third.Comments != nil {
		t.Errorf("records[2] = %+v, want all metrics nil", third)
	}
}

func TestFreeTextBilingualSentinel(t *testing.T) {
	page := "Post pubblicato · 3 settimane fa\nGrande notizia per il team\n890 visualizzazioni\n12 commenti"

	records := (&FreeText{}).Parse(page)
	if len(records) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(records))
	}
	if records[0].When != "3 settimane fa" {
		t.Errorf("When = %q, want \"3 settimane fa\"", records[0].When)
	}
	if records[0].Impressions == nil || *records[0].Impressions != 890 {
		t.Errorf("Impressions = %v, want 890", records[0].Impressions)
	}
	if records[0].Comments == nil || *records[0].Comments != 12 {
		t.Errorf("Comments = %v, want 12", records[0].Comments)
	}
}

func TestFreeTextSnippetTruncation(t *testing.T) {
	long := strings.Repeat("à", 300)
	page := "You posted this\n" + long

	records := (&FreeText{}).Parse(page)
	if len(records) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(records))
	}
	snippet := []rune(records[0].Snippet)
	if len(snippet) != 181 || snippet[180] != '…' {
		t.Errorf("snippet length = %d (last %q), want 180 chars plus ellipsis", len(snippet), snippet[len(snippet)-1])
	}
}

func TestFreeTextFractionalValuesStayFractional(t *testing.T) {
	page := "You posted this\nsnippet\n3,5 reactions"

	records := (&FreeText{}).Parse(page)
	if len(records) != 1 || records[0].Likes == nil {
		t.Fatalf("Parse() = %+v, want one record with likes", records)
	}
	if records[0].Likes.IsInt() {
		t.Errorf("Likes = %v reported as integer, want fractional", *records[0].Likes)
	}
	if *records[0].Likes != 3.5 {
		t.Errorf("Likes = %v, want 3.5", *records[0].Likes)
	}
}

const structuredPage = `<html><body><ul>
	<li class="member-analytics-addon-entity-list__item">
		<span class="member-analytics-addon-entity-list__title">1,234</span>
		<span class="member-analytics-addon-entity-list__label">Impressions</span>
	</li>
	<li class="member-analytics-addon-entity-list__item">
		<span class="member-analytics-addon-entity-list__title">2.5k</span>
		<span class="member-analytics-addon-entity-list__label">Visualizzazioni</span>
	</li>
	<li class="member-analytics-addon-entity-list__item">
		<span class="member-analytics-addon-entity-list__title">99</span>
		<span class="member-analytics-addon-entity-list__label">Reactions</span>
	</li>
	<li class="member-analytics-addon-entity-list__item">
		<span class="member-analytics-addon-entity-list__label">Impressions</span>
	</li>
</ul></body></html>`

func TestStructuredParse(t *testing.T) {
	records := (&Structured{}).Parse(structuredPage)

	// Reactions cards are intentionally ignored; the block missing its
	// title element is skipped without aborting the scan.
	if len(records) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(records))
	}
	if records[0].Impressions == nil || *records[0].Impressions != 1234 {
		t.Errorf("records[0].Impressions = %v, want 1234", records[0].Impressions)
	}
	if records[1].Impressions == nil || *records[1].Impressions != 2500 {
		t.Errorf("records[1].Impressions = %v, want 2500", records[1].Impressions)
	}
}

func TestStructuredIgnoresPlainText(t *testing.T) {
	if records := (&Structured{}).Parse("You posted this\n100 impressions"); records != nil {
		t.Errorf("Parse() = %v, want nil for non-markup input", records)
	}
}

func TestExtractFallsBackToFreeText(t *testing.T) {
	records := Extract(freeTextPage, 10)
	if len(records) != 3 {
		t.Fatalf("Extract() returned %d records, want 3 via free-text fallback", len(records))
	}

	limited := Extract(freeTextPage, 2)
	if len(limited) != 2 {
		t.Errorf("Extract() with limit 2 returned %d records", len(limited))
	}
}

func TestExtractPrefersStructured(t *testing.T) {
	records := Extract(structuredPage, 10)
	if len(records) != 2 {
		t.Fatalf("Extract() returned %d records, want 2 from structured strategy", len(records))
	}
}

func TestSeries(t *testing.T) {
	n := func(v float64) *models.Number { x := models.Number(v); return &x }
	records := []models.PostRecord{
		{Likes: n(30)},           // most recent
		{},                       // missing likes
		{Likes: n(10)},           // oldest
		{Likes: n(999)},          // beyond the limit
	}

	series := Series(records, MetricLikes, 3)
	if len(series) != 3 {
		t.Fatalf("Series() length = %d, want 3", len(series))
	}
	if series[0] != 10 || series[2] != 30 {
		t.Errorf("Series() = %v, want oldest-first [10 NaN 30]", series)
	}
	if !math.IsNaN(series[1]) {
		t.Errorf("series[1] = %v, want NaN for the missing field", series[1])
	}
}

func TestSeriesViewsUsesImpressions(t *testing.T) {
	n := func(v float64) *models.Number { x := models.Number(v); return &x }
	records := []models.PostRecord{{Impressions: n(200)}, {Impressions: n(100)}}

	series := Series(records, MetricViews, 10)
	if len(series) != 2 || series[0] != 100 || series[1] != 200 {
		t.Errorf("Series() = %v, want [100 200]", series)
	}
}
