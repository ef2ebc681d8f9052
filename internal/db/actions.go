package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/internal/common"
	dbpkg "github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/db"
	"github.com/urfave/cli/v2"
)

func open(c *cli.Context) (*dbpkg.DB, error) {
	if dbPath := c.String("db"); dbPath != "" {
		return dbpkg.OpenPath(dbPath)
	}
	return dbpkg.Open()
}

func RunsAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-8s %-6s %-40s\n",
		"ID", "Created", "Metrics", "Posts", "Lang", "Source")
	fmt.Println(strings.Repeat("-", 92))

	for _, r := range runs {
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		fmt.Printf("%-6d %-20s %-8d %-8d %-6s %-40s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.MetricCount,
			r.PostCount,
			lang,
			r.SourcePath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'liana db show <id>' to see the stored report\n")

	return nil
}

// ShowAction prints the stored report for a run, latest when no run ID
// argument is given.
func ShowAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	report, err := database.GetRunReport(runID)
	if err != nil {
		return fmt.Errorf("failed to load run %d: %w", runID, err)
	}

	return common.Encode(os.Stdout, report, c.String("format"))
}

// GetRunIDOrLatest returns the run ID from args, or the latest run
// when none is given.
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		runID, err := database.LatestRunID()
		if err != nil {
			return 0, fmt.Errorf("no runs found. Run 'liana report --input <file> --store' first")
		}
		return runID, nil
	}

	var runID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &runID); err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}
