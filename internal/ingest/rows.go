// Package ingest turns raw extraction output into extracted fields.
package ingest

import (
	"strings"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/money"
)

// headerTokens mark a row as a column header rather than data.
var headerTokens = []string{"account", "description", "item"}

// FromRows extracts (label, value) fields from tabular or delimited-text
// rows. The first non-empty row containing a header-like token is skipped;
// each following row with at least two cells contributes one field. Rows with
// an empty label or a zero value are dropped, not errors.
func FromRows(rows [][]string) []model.ExtractedField {
	fields := make([]model.ExtractedField, 0, len(rows))

	headerSeen := false
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		if !headerSeen && isHeaderRow(row) {
			headerSeen = true
			continue
		}
		if len(row) < 2 {
			continue
		}

		label := cleanLabel(row[0])
		value := money.Parse(row[1])
		if label == "" || value == 0 {
			continue
		}

		fields = append(fields, model.ExtractedField{
			Label:      label,
			Text:       strings.TrimSpace(row[1]),
			Value:      value,
			Confidence: 1.0,
			Source:     "table",
		})
	}

	return fields
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func isHeaderRow(row []string) bool {
	for _, cell := range row {
		lower := strings.ToLower(cell)
		for _, token := range headerTokens {
			if strings.Contains(lower, token) {
				return true
			}
		}
	}
	return false
}

func cleanLabel(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
