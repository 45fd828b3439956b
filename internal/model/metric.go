package model

import (
	"fmt"
	"math"
	"strings"
)

// MetricType is the coarse classification of a canonical metric.
type MetricType string

// Metric type constants.
const (
	MetricRevenue MetricType = "revenue"
	MetricExpense MetricType = "expense"
	MetricKPI     MetricType = "kpi"
)

// RawCell is one cell of a reconstructed document table. Ephemeral; produced
// during ingestion and never persisted.
type RawCell struct {
	Content    string
	Row        int
	Column     int
	Confidence float64
}

// ExtractedField is one recognized (label, value) pair from a document,
// before canonicalization. Text keeps the raw value string for period
// inference and audit. Immutable once produced.
type ExtractedField struct {
	Label      string
	Text       string
	Source     string // "field", "key_value", "table"
	Value      float64
	Confidence float64
}

// CanonicalMetric is a financial data point normalized to the fixed
// vocabulary. Owned by its parent document; a reviewer may adjust Value and
// flip Verified.
type CanonicalMetric struct {
	Label        string
	CanonicalKey string
	Category     string
	Subcategory  string
	Type         MetricType
	Value        float64
	Confidence   float64
	Verified     bool
}

// Validate checks metric invariants.
func (m *CanonicalMetric) Validate() error {
	if strings.TrimSpace(m.CanonicalKey) == "" {
		return fmt.Errorf("%w: missing canonical key", ErrInvalidMetric)
	}
	switch m.Type {
	case MetricRevenue, MetricExpense, MetricKPI:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidMetric, m.Type)
	}
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return fmt.Errorf("%w: value is not finite", ErrInvalidMetric)
	}
	if m.Confidence < 0 || m.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be between 0 and 1", ErrInvalidMetric)
	}
	return nil
}

// DocumentKPISet is the derived summary of one document's metrics. It is
// always recomputed from the metrics, never persisted on its own.
type DocumentKPISet struct {
	RevenueTotal   float64
	ExpenseTotal   float64
	GrossProfit    float64
	NetIncome      float64
	GrossMarginPct float64
	NetMarginPct   float64
}
