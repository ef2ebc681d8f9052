package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadDocument reads one input document. "-" reads stdin, anything
// else is treated as a file path.
func ReadDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// ReadDocuments reads every path in a comma-separated list, in order.
func ReadDocuments(pathsStr string) ([]string, error) {
	if strings.TrimSpace(pathsStr) == "" {
		return nil, nil
	}

	var documents []string
	for _, path := range strings.Split(pathsStr, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		document, err := ReadDocument(path)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}
	return documents, nil
}

// ParseSeriesFlag parses a comma-separated list of numbers, e.g.
// "10,12,11,1000,9". Blank entries are skipped.
func ParseSeriesFlag(seriesStr string) ([]float64, error) {
	if strings.TrimSpace(seriesStr) == "" {
		return nil, nil
	}

	parts := strings.Split(seriesStr, ",")
	series := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid series value %q: %w", part, err)
		}
		series = append(series, value)
	}
	return series, nil
}

// Encode marshals v as "json" or "yaml" and writes it to w.
func Encode(w io.Writer, v interface{}, format string) error {
	switch strings.ToLower(format) {
	case "", "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case "yaml", "yml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s (use: json or yaml)", format)
	}
}
