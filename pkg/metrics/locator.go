// Package metrics locates labeled analytics totals in a line-oriented
// document. Labels are recognized by bilingual (English/Italian)
// patterns; the number belonging to a label is picked from a short
// window of lines by a per-label tie-break strategy.
package metrics

import (
	"fmt"
	"math"
	"regexp"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/numparse"
)

// windowSize is the label line plus the next two lines. Dashboards put
// the figure either on the label line or just below it.
const windowSize = 3

// Strategy selects one candidate from the numbers found in a label
// window.
type Strategy int

const (
	// TakeMax picks the largest candidate: in a short window the
	// metric itself dwarfs incidental UI chrome like badge counts.
	TakeMax Strategy = iota
	// TakeFirst picks the first candidate in window order.
	TakeFirst
	// PreferSmallInteger picks the first whole-valued candidate at or
	// under the rule's threshold, falling back to the first candidate.
	// Keeps a follower delta from being confused with an
	// impressions-sized figure sharing the window.
	PreferSmallInteger
)

// Rule is one row of the locator table.
type Rule struct {
	Name      string
	Pattern   *regexp.Regexp
	Strategy  Strategy
	Threshold float64
}

// DefaultRules is the built-in bilingual label table. Order matters:
// labels are resolved in table order, and within a label the first
// matching line wins.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "Impressions", Pattern: regexp.MustCompile(`(?i)(impressions?|visualizzazioni)`), Strategy: TakeMax},
		{Name: "Reactions", Pattern: regexp.MustCompile(`(?i)(reactions?|reazioni)`), Strategy: TakeMax},
		{Name: "Comments", Pattern: regexp.MustCompile(`(?i)(comments?|commenti)`), Strategy: TakeMax},
		{Name: "Reposts", Pattern: regexp.MustCompile(`(?i)(reposts?|condivisioni|repost)`), Strategy: TakeMax},
		{Name: "EngagementRate", Pattern: regexp.MustCompile(`(?i)(engagement\s*rate|tasso\s*di\s*coinvolgimento)`), Strategy: TakeFirst},
		{Name: "Follows", Pattern: regexp.MustCompile(`(?i)(follows?|nuovi\s*followers?|seguaci(\s*nuovi)?)`), Strategy: PreferSmallInteger, Threshold: 100_000},
		{Name: "UniqueViewers", Pattern: regexp.MustCompile(`(?i)(unique\s*viewers|spettatori\s*unici|visualizzatori\s*unici)`), Strategy: TakeMax},
	}
}

// RulesFromConfig compiles a YAML label override into a rule table.
func RulesFromConfig(config *models.LabelConfig) ([]Rule, error) {
	rules := make([]Rule, 0, len(config.Labels))
	for _, entry := range config.Labels {
		pattern, err := regexp.Compile(entry.Pattern)
		if err != nil {
			return nil, fmt.Errorf("label %s: invalid pattern: %w", entry.Name, err)
		}

		rule := Rule{Name: entry.Name, Pattern: pattern, Threshold: entry.Threshold}
		switch entry.Strategy {
		case "max", "":
			rule.Strategy = TakeMax
		case "first":
			rule.Strategy = TakeFirst
		case "small_int":
			rule.Strategy = PreferSmallInteger
			if rule.Threshold == 0 {
				rule.Threshold = 100_000
			}
		default:
			return nil, fmt.Errorf("label %s: unknown strategy %q", entry.Name, entry.Strategy)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Locate scans the document once per rule and returns at most one value
// per label. A label whose pattern never matches, or whose windows hold
// no plausible numbers, is simply absent from the result.
func Locate(rules []Rule, lines []string) map[string]models.Number {
	found := make(map[string]models.Number)

	for _, rule := range rules {
		for i := range lines {
			if !rule.Pattern.MatchString(lines[i]) {
				continue
			}

			end := i + windowSize
			if end > len(lines) {
				end = len(lines)
			}
			candidates := numparse.WindowCandidates(lines[i:end])
			if len(candidates) == 0 {
				// Window had no usable number; keep scanning for the
				// next occurrence of this label.
				continue
			}

			found[rule.Name] = models.Number(pick(rule, candidates))
			break
		}
	}

	return found
}

func pick(rule Rule, candidates []float64) float64 {
	switch rule.Strategy {
	case TakeMax:
		best := candidates[0]
		for _, n := range candidates[1:] {
			if n > best {
				best = n
			}
		}
		return best
	case PreferSmallInteger:
		for _, n := range candidates {
			if n == math.Trunc(n) && n <= rule.Threshold {
				return n
			}
		}
		return candidates[0]
	default:
		return candidates[0]
	}
}
