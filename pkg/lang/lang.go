// Package lang detects whether an analytics document is rendered in
// English or Italian. The label tables are bilingual either way; the
// detected language is display metadata on the report.
package lang

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua detector restricted to the two locales the
// source dashboard ships in. Building the underlying models is
// expensive, so construct once and reuse.
type Detector struct {
	inner lingua.LanguageDetector
}

func NewDetector() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Italian).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the document language and the
// detector's confidence for it. Empty input yields an empty code.
func (d *Detector) Detect(text string) (string, float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 0
	}

	language, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}

	confidence := d.inner.ComputeLanguageConfidence(text, language)
	return strings.ToLower(language.IsoCode639_1().String()), confidence
}
