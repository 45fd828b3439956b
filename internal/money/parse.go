// Package money converts raw monetary strings into signed numeric values.
package money

import (
	"math"
	"strconv"
	"strings"
)

// currencyReplacer strips the currency symbols and separators we expect to
// see in extracted statement values.
var currencyReplacer = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	"¥", "",
	",", "",
	" ", "",
	" ", "",
)

// Parse converts a raw string into a signed numeric value. Currency symbols,
// thousands separators and whitespace are stripped; a pair of enclosing
// parentheses negates the value. Unparseable input degrades to 0 so that one
// malformed field never aborts ingestion of a whole document.
func Parse(s string) float64 {
	v, _ := ParseOK(s)
	return v
}

// ParseOK is Parse with an explicit success flag, for callers that need to
// distinguish an unparseable field from a legitimate zero.
func ParseOK(s string) (float64, bool) {
	cleaned := currencyReplacer.Replace(strings.TrimSpace(s))

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// ParseAny accepts the string-or-number values the analysis service hands
// back. Numeric values pass through unchanged; strings go through Parse;
// anything else degrades to 0.
func ParseAny(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		return Parse(t)
	default:
		return 0
	}
}

// Round2 rounds a value to two decimals, i.e. to represent real currency.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
