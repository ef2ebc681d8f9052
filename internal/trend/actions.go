package trend

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/ZENITH-cmd2/linkedin-analytics-apify/internal/common"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/models"
	dbpkg "github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/db"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/posts"
	"github.com/ZENITH-cmd2/linkedin-analytics-apify/pkg/trend"
	"github.com/urfave/cli/v2"
)

// TrendAction cleans a metric series and fits a linear trend. The
// series comes either directly from --series or from the per-post
// records of a stored run.
func TrendAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	results := map[string]models.TrendResult{}

	if seriesStr := c.String("series"); seriesStr != "" {
		series, err := common.ParseSeriesFlag(seriesStr)
		if err != nil {
			return err
		}
		results["series"] = trend.Analyze(series)
	} else {
		records, runID, err := loadRunPosts(c)
		if err != nil {
			return err
		}
		logger.Info("Loaded run posts", "run_id", runID, "posts", len(records))

		for _, metric := range selectMetrics(c.String("metric")) {
			series := posts.Series(records, metric, c.Int("posts"))
			results[string(metric)] = trend.Analyze(series)
		}
	}

	if csvPath := c.String("csv"); csvPath != "" {
		if err := writeCSV(csvPath, results); err != nil {
			return err
		}
		logger.Info("Wrote CSV", "path", csvPath)
	}

	return common.Encode(os.Stdout, results, c.String("format"))
}

func loadRunPosts(c *cli.Context) ([]models.PostRecord, int64, error) {
	var database *dbpkg.DB
	var err error
	if dbPath := c.String("db"); dbPath != "" {
		database, err = dbpkg.OpenPath(dbPath)
	} else {
		database, err = dbpkg.Open()
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID := int64(c.Int("run"))
	if runID == 0 {
		runID, err = database.LatestRunID()
		if err != nil {
			return nil, 0, err
		}
	}

	records, err := database.GetRunPosts(runID)
	if err != nil {
		return nil, 0, err
	}
	return records, runID, nil
}

func selectMetrics(metricStr string) []posts.Metric {
	switch metricStr {
	case "likes":
		return []posts.Metric{posts.MetricLikes}
	case "comments":
		return []posts.Metric{posts.MetricComments}
	case "views":
		return []posts.Metric{posts.MetricViews}
	default:
		return []posts.Metric{posts.MetricLikes, posts.MetricComments, posts.MetricViews}
	}
}

// writeCSV dumps every analyzed series as rows of
// metric,index,value,fitted. Fitted is blank when no line was fit.
func writeCSV(path string, results map[string]models.TrendResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"metric", "index", "value", "fitted"}); err != nil {
		return err
	}
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		result := results[name]
		for i, value := range result.Series {
			fitted := ""
			if i < len(result.Fitted) {
				fitted = strconv.FormatFloat(result.Fitted[i], 'f', -1, 64)
			}
			row := []string{name, strconv.Itoa(i), strconv.FormatInt(value, 10), fitted}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}
