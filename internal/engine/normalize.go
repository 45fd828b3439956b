// Package engine orchestrates normalization of raw extraction output into
// canonical financial documents.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/canonical"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/classify"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/docintel"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/ingest"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/kpi"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/period"
)

// NormalizeInput is one raw extraction to normalize. Exactly one of Rows or
// Analysis carries the data; Now is explicit so period fallback stays
// deterministic.
type NormalizeInput struct {
	Now      time.Time
	Analysis *docintel.AnalyzeResult
	OwnerID  string
	FileName string
	Rows     [][]string
}

// NormalizeResult is the canonicalized document alongside the unfiltered raw
// extraction, which is kept for reviewer debugging even when labels did not
// map to the vocabulary.
type NormalizeResult struct {
	Document model.FinancialDocument
	Raw      []model.ExtractedField
	KPIs     model.DocumentKPISet
}

// Normalize converts a raw extraction into canonical metrics, an inferred
// reporting period and a detected statement type. It is a pure
// transformation: unparseable values degrade to zero, unmapped labels drop
// out of the metrics, and a missing period falls back to the current month.
func Normalize(in NormalizeInput) *NormalizeResult {
	var fields []model.ExtractedField
	var grids [][][]string

	if in.Analysis != nil {
		extraction := ingest.FromAnalysis(in.Analysis)
		fields = extraction.Fields
		grids = extraction.Grids
	} else {
		fields = ingest.FromRows(in.Rows)
		grids = [][][]string{in.Rows}
	}

	statementType := classify.DetectStatementType(in.FileName, cellText(fields, grids))

	metrics := make([]model.CanonicalMetric, 0, len(fields))
	for _, field := range fields {
		entry, ok := canonical.Lookup(field.Label)
		if !ok {
			continue
		}
		category := classify.Categorize(field.Label, statementType)
		metrics = append(metrics, model.CanonicalMetric{
			Label:        field.Label,
			CanonicalKey: entry.Key,
			Type:         entry.Type,
			Category:     category.Name,
			Subcategory:  category.Type,
			Value:        field.Value,
			Confidence:   field.Confidence,
		})
	}

	start, end := period.Infer(fields, grids, in.Now)

	doc := model.FinancialDocument{
		ID:          uuid.NewString(),
		OwnerID:     in.OwnerID,
		FileName:    in.FileName,
		Type:        statementType,
		Status:      model.StatusPending,
		PeriodStart: start,
		PeriodEnd:   end,
		UploadedAt:  in.Now,
		Metrics:     metrics,
	}

	return &NormalizeResult{
		Document: doc,
		Raw:      fields,
		KPIs:     kpi.Compute(metrics),
	}
}

// cellText flattens labels, raw values and grid cells for statement-type
// keyword scanning.
func cellText(fields []model.ExtractedField, grids [][][]string) []string {
	var cells []string
	for _, f := range fields {
		cells = append(cells, f.Label, f.Text)
	}
	for _, grid := range grids {
		for _, row := range grid {
			cells = append(cells, row...)
		}
	}
	return cells
}
