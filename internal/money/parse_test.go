package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain number", input: "42", want: 42},
		{name: "decimal", input: "1234.56", want: 1234.56},
		{name: "dollar sign and thousands separators", input: "$1,234.56", want: 1234.56},
		{name: "parenthesized negative", input: "(500)", want: -500},
		{name: "parenthesized negative with symbol", input: "($1,200.50)", want: -1200.5},
		{name: "euro symbol", input: "€99.99", want: 99.99},
		{name: "leading whitespace", input: "  250 ", want: 250},
		{name: "explicit minus", input: "-75.25", want: -75.25},
		{name: "empty string", input: "", want: 0},
		{name: "free text", input: "not a number", want: 0},
		{name: "lone parentheses", input: "()", want: 0},
		{name: "zero", input: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Parse(tt.input), 1e-9)
		})
	}
}

func TestParseOK(t *testing.T) {
	v, ok := ParseOK("0")
	assert.True(t, ok, "explicit zero should parse")
	assert.Zero(t, v)

	_, ok = ParseOK("garbage")
	assert.False(t, ok)

	_, ok = ParseOK("")
	assert.False(t, ok)
}

func TestParseAny(t *testing.T) {
	assert.InDelta(t, 42.0, ParseAny(42), 1e-9)
	assert.InDelta(t, 42.5, ParseAny(42.5), 1e-9)
	assert.InDelta(t, 42.0, ParseAny(int64(42)), 1e-9)
	assert.InDelta(t, 1234.56, ParseAny("$1,234.56"), 1e-9)
	assert.Zero(t, ParseAny(nil))
	assert.Zero(t, ParseAny(struct{}{}))
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 3.33, Round2(10.0/3.0), 1e-9)
	assert.InDelta(t, 60.0, Round2(60.004), 1e-9)
}
