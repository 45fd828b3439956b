// Package period heuristically infers the reporting period a financial
// document describes. Inference is best effort: ambiguous or multi-period
// statements will resolve incorrectly and rely on human review.
package period

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/canonical"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

// candidateFields are checked in order against normalized extracted field
// labels before falling back to table text.
var candidateFields = []string{
	"reporting period",
	"reportingperiod",
	"period",
	"statement period",
	"start date",
	"end date",
	"statement date",
	"as of date",
	"date",
}

// periodMarkers flag a table cell as period-bearing text.
var periodMarkers = []string{"period", "year ended", "month ended", "quarter ended"}

var (
	yearPattern    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	quarterPattern = regexp.MustCompile(`\bq[1-4]\b`)
)

var monthNames = []struct {
	name  string
	month time.Month
}{
	{"january", time.January},
	{"february", time.February},
	{"march", time.March},
	{"april", time.April},
	{"may", time.May},
	{"june", time.June},
	{"july", time.July},
	{"august", time.August},
	{"september", time.September},
	{"october", time.October},
	{"november", time.November},
	{"december", time.December},
}

// Infer finds a reporting period for the document. Known period-indicator
// fields are consulted first, then table cell text. When nothing usable is
// found the current month of now is returned; now is an explicit parameter so
// inference stays deterministic under test.
func Infer(fields []model.ExtractedField, grids [][][]string, now time.Time) (time.Time, time.Time) {
	if raw, ok := findPeriodText(fields, grids); ok {
		return parsePeriod(raw, now)
	}
	return monthRange(now.Year(), now.Month())
}

// findPeriodText locates the raw period string, if any.
func findPeriodText(fields []model.ExtractedField, grids [][][]string) (string, bool) {
	for _, candidate := range candidateFields {
		for _, field := range fields {
			if canonical.Normalize(field.Label) == candidate && strings.TrimSpace(field.Text) != "" {
				return field.Text, true
			}
		}
	}

	for _, grid := range grids {
		for _, row := range grid {
			for _, cell := range row {
				lower := strings.ToLower(cell)
				for _, marker := range periodMarkers {
					if strings.Contains(lower, marker) {
						// The date often sits in the neighboring cell, so the
						// whole row is treated as the period string.
						return strings.Join(row, " "), true
					}
				}
			}
		}
	}

	return "", false
}

// parsePeriod turns a raw period string into a date range.
func parsePeriod(raw string, now time.Time) (time.Time, time.Time) {
	lower := strings.ToLower(raw)

	year := now.Year()
	if m := yearPattern.FindString(lower); m != "" {
		if y, err := strconv.Atoi(m); err == nil {
			year = y
		}
	}

	annual := strings.Contains(lower, "year ended") || strings.Contains(lower, "annual")
	if annual && strings.Contains(lower, "dec") {
		return yearRange(year)
	}

	if strings.Contains(lower, "quarter") || quarterPattern.MatchString(lower) {
		// Quarterly statements default to Q4 of the detected year.
		return time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	for _, m := range monthNames {
		if strings.Contains(lower, m.name) {
			return monthRange(year, m.month)
		}
	}

	return yearRange(year)
}

func yearRange(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// monthRange returns the first and last day of a month, honoring the actual
// days in the month including leap years.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}
