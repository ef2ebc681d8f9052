// Package hashtags pulls normalized hashtag tokens out of post text or
// markup.
package hashtags

import (
	"regexp"
	"strings"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/doc"
)

// hashtagPattern accepts word characters plus the extended Latin range,
// so Italian tags like #perché survive extraction.
var hashtagPattern = regexp.MustCompile(`#[0-9A-Za-z_\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{FF}]+`)

// Extract returns the hashtags found in a document, lower-cased and
// deduplicated case-insensitively, preserving first-occurrence order.
// Running it over its own joined output yields the same list.
func Extract(input string) []string {
	text := doc.Text(input)

	seen := make(map[string]struct{})
	var ordered []string
	for _, tag := range hashtagPattern.FindAllString(text, -1) {
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ordered = append(ordered, key)
	}
	return ordered
}
