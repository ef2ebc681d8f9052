// Package numparse turns noisy, locale-varying numeric text into
// numbers. It handles compact K/M/B notation, comma/period separator
// conventions, percent signs and the narrow no-break space that some
// locales use as a thousands separator.
package numparse

import (
	"regexp"
	"strconv"
	"strings"
)

// implausibleCap discards candidates above 1B; creator analytics totals
// never reach that, so anything larger is a concatenation artifact.
const implausibleCap = 1_000_000_000

// maxDigitsWithoutSuffix guards against garbled runs of concatenated
// digits masquerading as one number.
const maxDigitsWithoutSuffix = 9

var (
	tokenPattern   = regexp.MustCompile(`[+\-]?[0-9][0-9.,\x{202f}]*\s*[kmbKMB]?%?`)
	percentPattern = regexp.MustCompile(`[+\-]?[0-9][0-9.,\x{202f}]*\s*%`)
	suffixPattern  = regexp.MustCompile(`[kmbKMB]$`)
	groupedCommas  = regexp.MustCompile(`^[+\-]?[0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]+)?$`)
	digitRun       = regexp.MustCompile(`[0-9]+`)
	nonDigit       = regexp.MustCompile(`[^0-9]`)
)

// Value is one extracted numeric candidate. Percent marks tokens that
// carried a trailing % sign; the number itself keeps its bare magnitude
// (12% yields 12, not 0.12) for output compatibility.
type Value struct {
	Number  float64
	Percent bool
}

// Normalize converts a single textual numeric token into a number.
// It never fails: unparseable input degrades to the first contiguous
// digit run, and finally to 0, the documented "could not parse"
// sentinel. Callers that need "not found" must test for absence
// upstream, not for zero.
func Normalize(token string) float64 {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "m")
	case strings.HasSuffix(s, "b"):
		multiplier = 1_000_000_000
		s = strings.TrimSuffix(s, "b")
	}

	// Commas in "1,234" grouping position are thousands separators.
	// A remaining single comma with no period is a locale decimal
	// comma ("3,5"); any other comma is noise and dropped.
	switch {
	case groupedCommas.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ",") == 1 && !strings.Contains(s, "."):
		s = strings.Replace(s, ",", ".", 1)
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v * multiplier
	}

	// Fallback: first contiguous digit run only, to avoid concatenations.
	if run := digitRun.FindString(s); run != "" {
		if v, err := strconv.ParseFloat(run, 64); err == nil {
			return v * multiplier
		}
	}
	return 0
}

// ExtractNumbers returns every plausible numeric token in the text, in
// order of appearance, including percent-tagged values.
func ExtractNumbers(text string) []Value {
	var values []Value
	for _, tok := range tokenPattern.FindAllString(text, -1) {
		tok = strings.TrimSpace(tok)
		if !plausible(tok) {
			continue
		}
		percent := strings.HasSuffix(tok, "%")
		if percent {
			tok = strings.TrimSuffix(tok, "%")
		}
		values = append(values, Value{Number: Normalize(tok), Percent: percent})
	}
	return values
}

// WindowCandidates scans a label window for count-style candidates.
// Percent figures are excised from each line up front so a "+12%"
// delta is never mistaken for the metric next to it, and values above
// the 1B cap are discarded before any selection happens.
func WindowCandidates(lines []string) []float64 {
	var candidates []float64
	for _, raw := range lines {
		cleaned := raw
		if strings.Contains(raw, "%") {
			cleaned = percentPattern.ReplaceAllString(raw, " ")
		}
		for _, tok := range tokenPattern.FindAllString(cleaned, -1) {
			tok = strings.TrimSpace(tok)
			if !plausible(tok) {
				continue
			}
			num := Normalize(strings.TrimSuffix(tok, "%"))
			if num > implausibleCap {
				continue
			}
			candidates = append(candidates, num)
		}
	}
	return candidates
}

// plausible rejects tokens whose bare digit length exceeds the cap
// without a magnitude suffix excusing it.
func plausible(token string) bool {
	trimmed := strings.TrimSuffix(token, "%")
	digits := nonDigit.ReplaceAllString(trimmed, "")
	if len(digits) > maxDigitsWithoutSuffix && !suffixPattern.MatchString(strings.TrimSpace(trimmed)) {
		return false
	}
	return true
}
