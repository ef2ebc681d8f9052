package hashtags

import (
	"fmt"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/internal/common"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/hashtags"
	"github.com/urfave/cli/v2"
)

// HashtagsAction prints the deduplicated hashtags of one or more
// documents, one per line, lowercased and in first-occurrence order.
func HashtagsAction(c *cli.Context) error {
	inputPath := c.String("input")
	if inputPath == "" {
		return fmt.Errorf("no input provided via --input flag (use - for stdin)")
	}

	document, err := common.ReadDocument(inputPath)
	if err != nil {
		return err
	}
	frames, err := common.ReadDocuments(c.String("frames"))
	if err != nil {
		return err
	}

	documents := append([]string{document}, frames...)

	if c.Bool("counts") {
		intermediate := make([]map[string]int, 0, len(documents))
		for _, doc := range documents {
			intermediate = append(intermediate, hashtags.Count(doc))
		}
		merged := hashtags.Merge(intermediate)
		for _, line := range hashtags.TopTags(merged, c.Int("top")) {
			fmt.Println(line)
		}
		return nil
	}

	seen := make(map[string]struct{})
	for _, doc := range documents {
		for _, tag := range hashtags.Extract(doc) {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			fmt.Println(tag)
		}
	}

	return nil
}
