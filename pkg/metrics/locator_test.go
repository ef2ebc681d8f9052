package metrics

import (
	"testing"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
)

func TestLocateTakesMaxForCountLabels(t *testing.T) {
	lines := []string{"Impressions", "358", "42"}

	found := Locate(DefaultRules(), lines)
	if got := found["Impressions"]; got != 358 {
		t.Errorf("Impressions = %v, want 358 (max in window)", got)
	}
}

func TestLocateFollowsPrefersSmallInteger(t *testing.T) {
	lines := []string{"Follows: 7", "Impressions: 50000"}

	found := Locate(DefaultRules(), lines)
	if got := found["Follows"]; got != 7 {
		t.Errorf("Follows = %v, want 7", got)
	}
}

func TestLocateFollowsSkipsImpressionsSizedFigure(t *testing.T) {
	// A whole number above the threshold is an impressions-like figure,
	// not a follower delta.
	lines := []string{"Follows", "250000", "44"}

	found := Locate(DefaultRules(), lines)
	if got := found["Follows"]; got != 44 {
		t.Errorf("Follows = %v, want 44", got)
	}
}

func TestLocateFollowsFallsBackToFirst(t *testing.T) {
	lines := []string{"Nuovi followers", "350.5", "1200000.5"}

	found := Locate(DefaultRules(), lines)
	if got := found["Follows"]; got != 350.5 {
		t.Errorf("Follows = %v, want first candidate 350.5", got)
	}
}

func TestLocateBilingualCompactNotation(t *testing.T) {
	lines := []string{"Rendimento dei contenuti", "Impressioni 1.2k", "+15%"}

	found := Locate(DefaultRules(), lines)
	if got := found["Impressions"]; got != 1200 {
		t.Errorf("Impressions = %v, want 1200", got)
	}
}

func TestLocateOmitsMissingLabels(t *testing.T) {
	lines := []string{"Impressions", "358"}

	found := Locate(DefaultRules(), lines)
	if _, ok := found["Reposts"]; ok {
		t.Error("Reposts present, want label omitted when never matched")
	}
	if _, ok := found["UniqueViewers"]; ok {
		t.Error("UniqueViewers present, want label omitted when never matched")
	}
}

func TestLocateFirstMatchWins(t *testing.T) {
	// Once a label has a value, later (larger) occurrences are ignored.
	lines := []string{"Comments", "12", "unrelated", "Comments", "9000"}

	found := Locate(DefaultRules(), lines)
	if got := found["Comments"]; got != 12 {
		t.Errorf("Comments = %v, want 12 from the first matching window", got)
	}
}

func TestLocateSkipsEmptyWindows(t *testing.T) {
	// A label line with no number nearby keeps scanning; a later
	// occurrence can still supply the value.
	lines := []string{"Reactions overview", "no numbers here", "also none", "more filler", "Reactions", "77"}

	found := Locate(DefaultRules(), lines)
	if got := found["Reactions"]; got != 77 {
		t.Errorf("Reactions = %v, want 77 from the second occurrence", got)
	}
}

func TestLocatePercentNeverMistakenForCount(t *testing.T) {
	lines := []string{"Impressions", "+12%", "1,234"}

	found := Locate(DefaultRules(), lines)
	if got := found["Impressions"]; got != 1234 {
		t.Errorf("Impressions = %v, want 1234 with the percent excised", got)
	}
}

func TestRulesFromConfig(t *testing.T) {
	config := &models.LabelConfig{Labels: []models.LabelRule{
		{Name: "Saves", Pattern: `(?i)(saves?|salvataggi)`, Strategy: "max"},
		{Name: "NewFollowers", Pattern: `(?i)followers`, Strategy: "small_int"},
	}}

	rules, err := RulesFromConfig(config)
	if err != nil {
		t.Fatalf("RulesFromConfig() error = %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("RulesFromConfig() returned %d rules, want 2", len(rules))
	}
	if rules[1].Strategy != PreferSmallInteger || rules[1].Threshold != 100_000 {
		t.Errorf("rules[1] = %+v, want small_int with default threshold", rules[1])
	}

	found := Locate(rules, []string{"Salvataggi", "88"})
	if got := found["Saves"]; got != 88 {
		t.Errorf("Saves = %v, want 88 from custom rule", got)
	}
}

func TestRulesFromConfigRejectsBadInput(t *testing.T) {
	if _, err := RulesFromConfig(&models.LabelConfig{Labels: []models.LabelRule{
		{Name: "Broken", Pattern: `(`},
	}}); err == nil {
		t.Error("RulesFromConfig() error = nil, want invalid pattern error")
	}

	if _, err := RulesFromConfig(&models.LabelConfig{Labels: []models.LabelRule{
		{Name: "Odd", Pattern: `x`, Strategy: "median"},
	}}); err == nil {
		t.Error("RulesFromConfig() error = nil, want unknown strategy error")
	}
}
