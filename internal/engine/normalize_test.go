package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/docintel"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

var testNow = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func TestNormalize_EndToEndFromRows(t *testing.T) {
	rows := [][]string{
		{"Account", "Amount"},
		{"Total Revenue", "$1,000,000"},
		{"Cost of Goods Sold", "$400,000"},
		{"Net Income", "$205,000"},
	}

	result := Normalize(NormalizeInput{
		OwnerID:  "owner-1",
		FileName: "2023_profit_loss.csv",
		Rows:     rows,
		Now:      testNow,
	})

	doc := result.Document
	assert.Equal(t, model.StatementProfitLoss, doc.Type)
	assert.Equal(t, model.StatusPending, doc.Status)
	assert.NotEmpty(t, doc.ID)
	require.NoError(t, doc.Validate())

	byKey := map[string]model.CanonicalMetric{}
	for _, m := range doc.Metrics {
		byKey[m.CanonicalKey] = m
	}

	require.Contains(t, byKey, "revenue_total")
	assert.InDelta(t, 1000000.0, byKey["revenue_total"].Value, 1e-9)
	require.Contains(t, byKey, "cogs_total")
	assert.InDelta(t, 400000.0, byKey["cogs_total"].Value, 1e-9)
	require.Contains(t, byKey, "net_income")
	assert.InDelta(t, 205000.0, byKey["net_income"].Value, 1e-9)

	assert.InDelta(t, 600000.0, result.KPIs.GrossProfit, 1e-9)
}

func TestNormalize_UnmappedLabelsStayInRaw(t *testing.T) {
	rows := [][]string{
		{"Account", "Amount"},
		{"Total Revenue", "500"},
		{"Quantum Flux Reserve", "250"},
	}

	result := Normalize(NormalizeInput{
		OwnerID:  "owner-1",
		FileName: "pnl.csv",
		Rows:     rows,
		Now:      testNow,
	})

	assert.Len(t, result.Document.Metrics, 1, "unmapped label must not become a metric")
	assert.Len(t, result.Raw, 2, "unmapped label must stay visible in the raw extraction")
}

func TestNormalize_FromAnalysis(t *testing.T) {
	conf := 0.92
	analysis := &docintel.AnalyzeResult{
		Documents: []docintel.Document{
			{
				DocType: "PNL",
				Fields: map[string]docintel.Field{
					"Total Revenue": {Type: "currency", ValueNumber: floatPtr(100000), Confidence: &conf},
					"Net Income":    {Type: "string", Content: "$25,000"},
				},
			},
		},
		Tables: []docintel.Table{
			{
				RowCount:    1,
				ColumnCount: 2,
				Cells: []docintel.Cell{
					{RowIndex: 0, ColumnIndex: 0, Content: "Reporting Period"},
					{RowIndex: 0, ColumnIndex: 1, Content: "Year Ended December 31, 2023"},
				},
			},
		},
	}

	result := Normalize(NormalizeInput{
		OwnerID:  "owner-1",
		FileName: "statement.pdf",
		Analysis: analysis,
		Now:      testNow,
	})

	byKey := map[string]model.CanonicalMetric{}
	for _, m := range result.Document.Metrics {
		byKey[m.CanonicalKey] = m
	}

	require.Contains(t, byKey, "revenue_total")
	assert.InDelta(t, 100000.0, byKey["revenue_total"].Value, 1e-9)
	assert.InDelta(t, 0.92, byKey["revenue_total"].Confidence, 1e-9)

	require.Contains(t, byKey, "net_income")
	assert.InDelta(t, 25000.0, byKey["net_income"].Value, 1e-9)
	// Confidence defaults when the service omits it.
	assert.InDelta(t, docintel.DefaultConfidence, byKey["net_income"].Confidence, 1e-9)

	assert.Equal(t, 2023, result.Document.PeriodStart.Year())
	assert.Equal(t, time.December, result.Document.PeriodEnd.Month())
}

func TestNormalize_NoPeriodFallsBackToCurrentMonth(t *testing.T) {
	result := Normalize(NormalizeInput{
		OwnerID:  "owner-1",
		FileName: "pnl.csv",
		Rows:     [][]string{{"Total Revenue", "100"}},
		Now:      testNow,
	})

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), result.Document.PeriodStart)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), result.Document.PeriodEnd)
}

func floatPtr(v float64) *float64 { return &v }
