package utils

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment. Plain text passes
// through unchanged.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.TrimSpace(doc.Text())
}

// ContainsAnyFold reports whether any non-empty needle occurs in any haystack,
// ignoring case.
func ContainsAnyFold(haystacks []string, needles ...string) bool {
	for _, h := range haystacks {
		lower := strings.ToLower(h)
		for _, n := range needles {
			if n == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(n)) {
				return true
			}
		}
	}
	return false
}

// CollapseSpaces trims s and folds internal whitespace runs to single spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
