package ingest

import (
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/docintel"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/money"
)

// Extraction is the unified output of ingesting one analysis result: every
// recognized field plus the reconstructed table grids kept around for period
// inference and audit.
type Extraction struct {
	Fields []model.ExtractedField
	Grids  [][][]string
}

// FromAnalysis extracts fields from all three shapes an analysis result may
// carry: typed document fields, key-value pairs and tables. Typed fields and
// key-value pairs go straight to fields; tables are reconstructed into dense
// grids and only mined for fields when no typed field was found at all.
func FromAnalysis(res *docintel.AnalyzeResult) Extraction {
	var ex Extraction
	if res == nil {
		return ex
	}

	for _, doc := range res.Documents {
		for label, field := range doc.Fields {
			ex.Fields = append(ex.Fields, model.ExtractedField{
				Label:      label,
				Text:       fieldText(field),
				Value:      fieldValue(field),
				Confidence: field.FieldConfidence(),
				Source:     "field",
			})
		}
	}

	for _, pair := range res.KeyValuePairs {
		if pair.Key.Content == "" {
			continue
		}
		ex.Fields = append(ex.Fields, model.ExtractedField{
			Label:      pair.Key.Content,
			Text:       pair.Value.Content,
			Value:      money.Parse(pair.Value.Content),
			Confidence: pair.PairConfidence(),
			Source:     "key_value",
		})
	}

	for _, table := range res.Tables {
		ex.Grids = append(ex.Grids, reconstructGrid(table))
	}

	if len(ex.Fields) == 0 {
		ex.Fields = fieldsFromGrids(ex.Grids)
	}

	return ex
}

// fieldValue resolves a typed field's value by trying the value slots in a
// fixed priority order: direct value, typed number, typed string, raw
// content. Whichever is found first goes through the monetary parser.
func fieldValue(f docintel.Field) float64 {
	if f.Value != nil {
		return money.ParseAny(f.Value)
	}
	if f.ValueNumber != nil {
		return *f.ValueNumber
	}
	if f.ValueString != "" {
		return money.Parse(f.ValueString)
	}
	return money.Parse(f.Content)
}

// fieldText picks the most readable raw text for a typed field.
func fieldText(f docintel.Field) string {
	if f.Content != "" {
		return f.Content
	}
	if f.ValueString != "" {
		return f.ValueString
	}
	if s, ok := f.Value.(string); ok {
		return s
	}
	return ""
}

// reconstructGrid builds a dense row-major grid of cell text from a sparse
// table, defaulting unfilled cells to the empty string.
func reconstructGrid(table docintel.Table) [][]string {
	rows := table.RowCount
	cols := table.ColumnCount
	for _, cell := range table.Cells {
		if cell.RowIndex >= rows {
			rows = cell.RowIndex + 1
		}
		if cell.ColumnIndex >= cols {
			cols = cell.ColumnIndex + 1
		}
	}

	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
	}
	for _, cell := range table.Cells {
		grid[cell.RowIndex][cell.ColumnIndex] = cell.Content
	}
	return grid
}

// fieldsFromGrids is the table fallback used when the analysis carried no
// typed fields: the label comes from column 0 and the value from the
// rightmost cell in the row that parses to a nonzero number.
func fieldsFromGrids(grids [][][]string) []model.ExtractedField {
	var fields []model.ExtractedField
	for _, grid := range grids {
		for _, row := range grid {
			if len(row) < 2 {
				continue
			}
			label := cleanLabel(row[0])
			if label == "" {
				continue
			}
			for col := len(row) - 1; col >= 1; col-- {
				value, ok := money.ParseOK(row[col])
				if !ok || value == 0 {
					continue
				}
				fields = append(fields, model.ExtractedField{
					Label:      label,
					Text:       row[col],
					Value:      value,
					Confidence: 0.8,
					Source:     "table",
				})
				break
			}
		}
	}
	return fields
}
