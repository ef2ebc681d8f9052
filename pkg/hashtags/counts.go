package hashtags

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/doc"
)

// Count tallies hashtag occurrences for a single document.
func Count(document string) map[string]int {
	counts := make(map[string]int)
	for _, tag := range hashtagPattern.FindAllString(doc.Text(document), -1) {
		counts[strings.ToLower(tag)]++
	}
	return counts
}

// Merge aggregates per-document tally maps into a single map.
func Merge(intermediate []map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, counts := range intermediate {
		for tag, n := range counts {
			merged[tag] += n
		}
	}
	return merged
}

// TopTags returns the n most frequent hashtags as "tag:count" strings,
// most frequent first, ties broken alphabetically.
func TopTags(counts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	tags := make([]string, limit)
	for i := 0; i < limit; i++ {
		tags[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return tags
}
