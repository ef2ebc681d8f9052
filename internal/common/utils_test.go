package common

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	if err := os.WriteFile(path, []byte("<p>hello</p>"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument() error = %v", err)
	}
	if got != "<p>hello</p>" {
		t.Fatalf("ReadDocument() = %q, want %q", got, "<p>hello</p>")
	}
}

func TestReadDocumentMissingFile(t *testing.T) {
	if _, err := ReadDocument("/nonexistent/page.html"); err == nil {
		t.Fatal("ReadDocument() expected error for missing file")
	}
}

func TestParseSeriesFlag(t *testing.T) {
	got, err := ParseSeriesFlag("10, 12,11,1000,9")
	if err != nil {
		t.Fatalf("ParseSeriesFlag() error = %v", err)
	}
	want := []float64{10, 12, 11, 1000, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSeriesFlag() = %v, want %v", got, want)
	}
}

func TestParseSeriesFlagInvalid(t *testing.T) {
	if _, err := ParseSeriesFlag("10,abc"); err == nil {
		t.Fatal("ParseSeriesFlag() expected error for non-numeric entry")
	}
}

func TestParseSeriesFlagEmpty(t *testing.T) {
	got, err := ParseSeriesFlag("  ")
	if err != nil {
		t.Fatalf("ParseSeriesFlag() error = %v", err)
	}
	if got != nil {
		t.Fatalf("ParseSeriesFlag() = %v, want nil", got)
	}
}

func TestEncodeFormats(t *testing.T) {
	value := map[string]int{"a": 1}

	var jsonOut bytes.Buffer
	if err := Encode(&jsonOut, value, "json"); err != nil {
		t.Fatalf("Encode(json) error = %v", err)
	}
	if !strings.Contains(jsonOut.String(), `"a": 1`) {
		t.Fatalf("Encode(json) = %q, want it to contain %q", jsonOut.String(), `"a": 1`)
	}

	var yamlOut bytes.Buffer
	if err := Encode(&yamlOut, value, "yaml"); err != nil {
		t.Fatalf("Encode(yaml) error = %v", err)
	}
	if !strings.Contains(yamlOut.String(), "a: 1") {
		t.Fatalf("Encode(yaml) = %q, want it to contain %q", yamlOut.String(), "a: 1")
	}

	if err := Encode(&bytes.Buffer{}, value, "xml"); err == nil {
		t.Fatal("Encode(xml) expected error for unknown format")
	}
}
