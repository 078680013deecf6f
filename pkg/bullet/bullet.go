// Package bullet extracts list items and numeric citations from free-text
// model output.
package bullet

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gaus-thesis/pkg/utils"
)

var citationPattern = regexp.MustCompile(`\[(\d+)\]`)

// Line is a parsed list item with the citation numbers it carried, in order
// of first appearance.
type Line struct {
	Text      string
	Citations []int
}

// Lines returns the text of every list item in s. A list item is a line whose
// first non-space character is '-', '•' or a digit. Leading markers and
// enumeration ("1.", "2)") digits and periods are removed; items that are empty
// after stripping are skipped.
func Lines(s string) []string {
	var out []string
	for _, raw := range strings.Split(s, "\n") {
		line := strings.TrimSpace(raw)
		if !isListItem(line) {
			continue
		}
		clean := stripMarker(line)
		if clean == "" {
			continue
		}
		out = append(out, clean)
	}
	return out
}

// CitedLines is Lines plus citation extraction. "[n]" tokens are removed from
// the text and returned as numbers. Repeated numbers are reported once.
func CitedLines(s string) []Line {
	items := Lines(s)
	out := make([]Line, 0, len(items))
	for _, item := range items {
		out = append(out, ExtractCitations(item))
	}
	return out
}

// ExtractCitations splits one line into its display text and citation numbers.
func ExtractCitations(line string) Line {
	var citations []int
	seen := make(map[int]bool)
	for _, m := range citationPattern.FindAllStringSubmatch(line, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		citations = append(citations, n)
	}

	text := citationPattern.ReplaceAllString(line, " ")
	return Line{Text: utils.CollapseSpaces(text), Citations: citations}
}

func isListItem(line string) bool {
	if line == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return r == '-' || r == '•' || unicode.IsDigit(r)
}

func stripMarker(line string) string {
	line = strings.TrimLeft(line, "-•")
	line = strings.TrimLeft(line, "0123456789.")
	return strings.TrimSpace(line)
}
