// Package storage writes report artifacts to disk for the
// persistence/reporting side of the pipeline.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Storage struct{}

// SaveFile writes content, creating parent directories as needed.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %s", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %s", err)
	}
	return nil
}

// ReadFile loads a document from disk.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %s", err)
	}
	return data, nil
}

func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil || !os.IsNotExist(err)
}

// ReportPath generates a filesystem-friendly, date-stamped path for a
// report derived from the given source document.
func ReportPath(outputDir, sourcePath, format string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	if base == "" || base == "." {
		base = "report"
	}
	base = strings.ReplaceAll(base, " ", "_")

	today := time.Now().Format("2006-01-02")
	return filepath.Join(outputDir, fmt.Sprintf("%s-%s.%s", base, today, format))
}
