package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "Acme beats estimates", want: "Acme beats estimates"},
		{name: "anchor", input: `<a href="https://x.test/acme">Acme</a> rallies`, want: "Acme rallies"},
		{name: "entities", input: "Q&amp;A with <b>ACME</b> CEO", want: "Q&A with ACME CEO"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}

func TestStripHTMLDropsMarkupOnlyMatches(t *testing.T) {
	// the ticker only appears inside an attribute, which is not visible text
	got := StripHTML(`<a href="https://x.test/acme">Markets wrap</a>`)
	assert.False(t, ContainsAnyFold([]string{got}, "acme"))
}

func TestContainsAnyFold(t *testing.T) {
	assert.True(t, ContainsAnyFold([]string{"Apple Inc. unveils"}, "AAPL", "apple inc."))
	assert.True(t, ContainsAnyFold([]string{"", "why aapl fell"}, "AAPL"))
	assert.False(t, ContainsAnyFold([]string{"Oil prices"}, "AAPL", "Apple Inc."))
	assert.False(t, ContainsAnyFold([]string{"anything"}, ""))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "Product launch drives optimism", CollapseSpaces("  Product launch  drives\toptimism "))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.345000001))
	assert.Equal(t, -3.33, Round2(-3.3333))
	assert.Equal(t, 0.0, Round2(0))
}

func TestNormalizeUTC(t *testing.T) {
	_, ok := NormalizeUTC(nil)
	assert.False(t, ok)

	loc := time.FixedZone("EST", -5*60*60)
	in := time.Date(2026, 10, 16, 9, 30, 0, 0, loc)
	got, ok := NormalizeUTC(&in)
	assert.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 14, got.Hour())
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 11, 12, 0, 0, 0, time.UTC), DaysAgo(now, 7))
}
