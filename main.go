package main

import (
	"fmt"
	"log"
	"os"

	dbactions "github.com/ZENITH-cmd2/linkedin-analytics-apify/internal/db"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/internal/hashtags"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/internal/report"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/internal/trend"
	dbpkg "github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/db"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "liana",
		Usage: "extract metrics, posts and hashtags from saved LinkedIn analytics pages",
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "Parse a saved analytics page into a full report",
				Action: report.ReportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Input document path, or - for stdin",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "frames",
						Usage: "Comma-separated extra document paths (e.g. saved iframe dumps)",
					},
					&cli.IntFlag{
						Name:  "posts",
						Value: 10,
						Usage: "Maximum number of post records to keep",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "labels",
						Usage: "YAML file overriding the built-in label table",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Also save the report under this directory",
					},
					&cli.BoolFlag{
						Name:  "store",
						Usage: "Record this report as a run in the database",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Database path (default: next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "trend",
				Usage:  "Clean a metric series and fit a linear trend",
				Action: trend.TrendAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "series",
						Usage: "Comma-separated series to analyze directly, bypassing the database",
					},
					&cli.IntFlag{
						Name:  "run",
						Usage: "Run ID to load posts from (0 = latest)",
					},
					&cli.StringFlag{
						Name:  "metric",
						Value: "all",
						Usage: "Metric to analyze: likes, comments, views or all",
					},
					&cli.IntFlag{
						Name:  "posts",
						Value: 10,
						Usage: "Maximum number of posts per series",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Also write cleaned series and fitted line to this CSV file",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Database path (default: next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "hashtags",
				Usage:  "Print deduplicated hashtags from one or more documents",
				Action: hashtags.HashtagsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Input document path, or - for stdin",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "frames",
						Usage: "Comma-separated extra document paths",
					},
					&cli.BoolFlag{
						Name:  "counts",
						Usage: "Print occurrence counts instead of a deduplicated list",
					},
					&cli.IntFlag{
						Name:  "top",
						Value: 25,
						Usage: "Number of hashtags to show with --counts",
					},
				},
			},
			{
				Name:  "db",
				Usage: "Inspect stored runs",
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "List stored runs",
						Action: dbactions.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum number of runs to list",
							},
							&cli.StringFlag{
								Name:  "db",
								Usage: "Database path (default: next to the binary)",
							},
						},
					},
					{
						Name:      "show",
						Usage:     "Print the stored report for a run (latest when omitted)",
						ArgsUsage: "[run_id]",
						Action:    dbactions.ShowAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "format",
								Value: "json",
								Usage: "Output format: json or yaml",
							},
							&cli.StringFlag{
								Name:  "db",
								Usage: "Database path (default: next to the binary)",
							},
						},
					},
					{
						Name:   "init",
						Usage:  "Initialize the database schema",
						Action: initDBAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "db",
								Usage: "Database path (default: next to the binary)",
							},
						},
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func initDBAction(c *cli.Context) error {
	var database *dbpkg.DB
	var err error
	if dbPath := c.String("db"); dbPath != "" {
		database, err = dbpkg.OpenPath(dbPath)
	} else {
		database, err = dbpkg.Open()
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := database.InitSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	fmt.Printf("Database initialized: %s\n", database.Path())
	return nil
}
