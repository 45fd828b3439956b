package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/docintel"
)

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{"", ""},
		{"Account", "Amount"},
		{"Total Revenue", "$1,000,000"},
		{"Cost of Goods Sold", "$400,000"},
		{"Notes"},
		{"", "$42"},
		{"Deferred Setup", "n/a"},
	}

	fields := FromRows(rows)
	require.Len(t, fields, 2)

	assert.Equal(t, "Total Revenue", fields[0].Label)
	assert.InDelta(t, 1000000.0, fields[0].Value, 1e-9)
	assert.InDelta(t, 1.0, fields[0].Confidence, 1e-9)

	assert.Equal(t, "Cost of Goods Sold", fields[1].Label)
	assert.InDelta(t, 400000.0, fields[1].Value, 1e-9)
}

func TestFromRows_HeaderOnlySkippedOnce(t *testing.T) {
	rows := [][]string{
		{"Description", "Value"},
		{"Item Description Fee", "100"},
	}

	fields := FromRows(rows)
	// The second row contains a header token but only the first header is
	// skipped.
	require.Len(t, fields, 1)
	assert.Equal(t, "Item Description Fee", fields[0].Label)
}

func TestFromRows_CollapsesLabelWhitespace(t *testing.T) {
	fields := FromRows([][]string{{"  Net   Income ", "250"}})
	require.Len(t, fields, 1)
	assert.Equal(t, "Net Income", fields[0].Label)
}

func TestFromAnalysis_TypedFieldPrecedence(t *testing.T) {
	num := 4500.0
	res := &docintel.AnalyzeResult{
		Documents: []docintel.Document{
			{
				Fields: map[string]docintel.Field{
					"direct value":   {Value: 1200.5},
					"typed number":   {ValueNumber: &num},
					"typed string":   {ValueString: "$3,000"},
					"content only":   {Content: "(750)"},
					"value outranks": {Value: "$99", ValueNumber: &num},
				},
			},
		},
	}

	ex := FromAnalysis(res)
	byLabel := map[string]float64{}
	for _, f := range ex.Fields {
		byLabel[f.Label] = f.Value
	}

	assert.InDelta(t, 1200.5, byLabel["direct value"], 1e-9)
	assert.InDelta(t, 4500.0, byLabel["typed number"], 1e-9)
	assert.InDelta(t, 3000.0, byLabel["typed string"], 1e-9)
	assert.InDelta(t, -750.0, byLabel["content only"], 1e-9)
	assert.InDelta(t, 99.0, byLabel["value outranks"], 1e-9)
}

func TestFromAnalysis_KeyValuePairs(t *testing.T) {
	conf := 0.73
	res := &docintel.AnalyzeResult{
		KeyValuePairs: []docintel.KeyValuePair{
			{Key: docintel.Span{Content: "Rent"}, Value: docintel.Span{Content: "$2,400"}, Confidence: &conf},
			{Key: docintel.Span{Content: "Payroll"}, Value: docintel.Span{Content: "$18,000"}},
			{Key: docintel.Span{Content: ""}, Value: docintel.Span{Content: "orphan"}},
		},
	}

	ex := FromAnalysis(res)
	require.Len(t, ex.Fields, 2)

	assert.InDelta(t, 0.73, ex.Fields[0].Confidence, 1e-9)
	assert.InDelta(t, docintel.DefaultConfidence, ex.Fields[1].Confidence, 1e-9)
}

func TestFromAnalysis_GridReconstruction(t *testing.T) {
	res := &docintel.AnalyzeResult{
		Documents: []docintel.Document{
			{Fields: map[string]docintel.Field{"Revenue": {Value: 10.0}}},
		},
		Tables: []docintel.Table{
			{
				RowCount:    2,
				ColumnCount: 3,
				Cells: []docintel.Cell{
					{RowIndex: 0, ColumnIndex: 0, Content: "Revenue"},
					{RowIndex: 0, ColumnIndex: 2, Content: "$100"},
					{RowIndex: 1, ColumnIndex: 1, Content: "COGS"},
				},
			},
		},
	}

	ex := FromAnalysis(res)
	require.Len(t, ex.Grids, 1)

	grid := ex.Grids[0]
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)
	assert.Equal(t, "Revenue", grid[0][0])
	assert.Equal(t, "", grid[0][1], "unfilled cells default to empty string")
	assert.Equal(t, "$100", grid[0][2])
	assert.Equal(t, "COGS", grid[1][1])
}

func TestFromAnalysis_TableFallbackWhenNoFields(t *testing.T) {
	res := &docintel.AnalyzeResult{
		Tables: []docintel.Table{
			{
				RowCount:    2,
				ColumnCount: 3,
				Cells: []docintel.Cell{
					{RowIndex: 0, ColumnIndex: 0, Content: "Total Revenue"},
					{RowIndex: 0, ColumnIndex: 1, Content: "notes"},
					{RowIndex: 0, ColumnIndex: 2, Content: "$100,000"},
					{RowIndex: 1, ColumnIndex: 0, Content: "Net Income"},
					{RowIndex: 1, ColumnIndex: 2, Content: "$25,000"},
				},
			},
		},
	}

	ex := FromAnalysis(res)
	require.Len(t, ex.Fields, 2)

	// The rightmost parseable value wins.
	assert.Equal(t, "Total Revenue", ex.Fields[0].Label)
	assert.InDelta(t, 100000.0, ex.Fields[0].Value, 1e-9)
	assert.Equal(t, "table", ex.Fields[0].Source)
	assert.InDelta(t, 25000.0, ex.Fields[1].Value, 1e-9)
}

func TestFromAnalysis_Nil(t *testing.T) {
	ex := FromAnalysis(nil)
	assert.Empty(t, ex.Fields)
	assert.Empty(t, ex.Grids)
}
