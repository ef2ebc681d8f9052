package report

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/internal/common"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
	dbpkg "github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/db"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/lang"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/metrics"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/parser"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/storage"
	"github.com/urfave/cli/v2"
)

// ReportAction parses a saved analytics page into a full report and
// prints it, optionally saving a copy and recording it as a run.
func ReportAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config := &models.ReportConfig{
		InputPath: c.String("input"),
		PostCount: c.Int("posts"),
	}
	if framesStr := c.String("frames"); framesStr != "" {
		for _, path := range strings.Split(framesStr, ",") {
			if path = strings.TrimSpace(path); path != "" {
				config.FramePaths = append(config.FramePaths, path)
			}
		}
	}
	if config.InputPath == "" {
		return fmt.Errorf("no input provided via --input flag (use - for stdin)")
	}

	document, err := common.ReadDocument(config.InputPath)
	if err != nil {
		return err
	}
	frames := make([]string, 0, len(config.FramePaths))
	for _, path := range config.FramePaths {
		frame, err := common.ReadDocument(path)
		if err != nil {
			return err
		}
		frames = append(frames, frame)
	}

	rules, err := loadRules(c.String("labels"))
	if err != nil {
		return err
	}

	logger.Info("Parsing analytics document",
		"input", config.InputPath, "frames", len(frames), "posts", config.PostCount)

	p := &parser.Parser{}
	report := p.Parse(parser.Request{
		Document:  document,
		Frames:    frames,
		PostCount: config.PostCount,
		Rules:     rules,
	})
	report.SourcePath = config.InputPath

	report.Language, report.LanguageConfidence = lang.NewDetector().Detect(document)

	logger.Info("Parsed report",
		"metrics", len(report.Metrics),
		"posts", len(report.Posts),
		"hashtags", len(report.Hashtags),
		"language", report.Language)

	format := c.String("format")
	var out bytes.Buffer
	if err := common.Encode(&out, report, format); err != nil {
		return err
	}

	if outputDir := c.String("output-dir"); outputDir != "" {
		reportPath := storage.ReportPath(outputDir, config.InputPath, format)
		s := &storage.Storage{}
		if err := s.SaveFile(reportPath, out.Bytes()); err != nil {
			return err
		}
		logger.Info("Saved report", "path", reportPath)
	}

	if c.Bool("store") {
		runID, err := storeRun(c.String("db"), report)
		if err != nil {
			return err
		}
		logger.Info("Recorded run", "run_id", runID)
	}

	fmt.Print(out.String())
	return nil
}

func loadRules(labelsPath string) ([]metrics.Rule, error) {
	if labelsPath == "" {
		return nil, nil
	}
	config, err := models.LoadLabelConfig(labelsPath)
	if err != nil {
		return nil, err
	}
	return metrics.RulesFromConfig(config)
}

func storeRun(dbPath string, report *models.Report) (int64, error) {
	var database *dbpkg.DB
	var err error
	if dbPath != "" {
		database, err = dbpkg.OpenPath(dbPath)
	} else {
		database, err = dbpkg.Open()
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return database.InsertRun(report)
}
