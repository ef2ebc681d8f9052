// Package doc flattens raw analytics documents, markup or plain text,
// into the line-oriented form the extraction heuristics scan.
package doc

import (
	"bufio"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// markupHint decides whether an input is HTML or an already-flat text
// dump (e.g. a clipboard copy of the rendered page).
var markupHint = regexp.MustCompile(`(?i)<\s*(!doctype|html|head|body|div|span|p|li|ul|section|article|table)[\s>/]`)

// IsMarkup reports whether the input looks like an HTML document.
func IsMarkup(input string) bool {
	return markupHint.MatchString(input)
}

// Text returns the readable text of a document. Markup is flattened to
// one line per text node, mirroring how the page reads top to bottom;
// plain text passes through unchanged.
func Text(input string) string {
	if !IsMarkup(input) {
		return input
	}

	root, err := html.Parse(strings.NewReader(input))
	if err != nil {
		// Malformed markup degrades to the raw input rather than failing.
		return input
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return b.String()
}

// Lines splits a document into trimmed, non-blank lines, the unit the
// label locator and the free-text post parser operate on.
func Lines(input string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(Text(input)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
