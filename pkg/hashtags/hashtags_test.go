package hashtags

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	input := "Launching today! #GoLang #marketing update #golang #Perché2024"
	want := []string{"#golang", "#marketing", "#perché2024"}

	got := Extract(input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtractFromMarkup(t *testing.T) {
	input := `<div><p>Big news #Hiring</p><span>#hiring #remote</span></div>`
	want := []string{"#hiring", "#remote"}

	got := Extract(input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtractIdempotent(t *testing.T) {
	first := Extract("Post about #AI, #DataScience and #ai again")
	second := Extract(strings.Join(first, " "))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract() not idempotent: first %v, second %v", first, second)
	}
}

func TestExtractNone(t *testing.T) {
	if got := Extract("no tags here, just # a stray hash"); len(got) != 0 {
		t.Errorf("Extract() = %v, want empty", got)
	}
}
