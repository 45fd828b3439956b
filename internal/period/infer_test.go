package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func periodField(label, text string) model.ExtractedField {
	return model.ExtractedField{Label: label, Text: text, Confidence: 0.9, Source: "field"}
}

func TestInfer_AnnualPeriod(t *testing.T) {
	fields := []model.ExtractedField{
		periodField("Reporting Period", "Year Ended December 31, 2023"),
	}

	start, end := Infer(fields, nil, testNow)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestInfer_QuarterDefaultsToQ4(t *testing.T) {
	fields := []model.ExtractedField{
		periodField("Period", "Quarter Ended 2024"),
	}

	start, end := Infer(fields, nil, testNow)
	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestInfer_NamedMonth(t *testing.T) {
	fields := []model.ExtractedField{
		periodField("Statement Date", "Month Ended February 2024"),
	}

	start, end := Infer(fields, nil, testNow)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	// 2024 is a leap year.
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestInfer_YearOnlyDefaultsToCalendarYear(t *testing.T) {
	fields := []model.ExtractedField{
		periodField("As of Date", "Fiscal 2022"),
	}

	start, end := Infer(fields, nil, testNow)
	assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestInfer_TableTextFallback(t *testing.T) {
	grids := [][][]string{
		{
			{"Profit and Loss", ""},
			{"Year Ended December 31, 2021", ""},
		},
	}

	start, end := Infer(nil, grids, testNow)
	assert.Equal(t, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestInfer_NothingFoundUsesCurrentMonth(t *testing.T) {
	start, end := Infer(nil, nil, testNow)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestInfer_FieldOrderPrecedence(t *testing.T) {
	// reporting period outranks statement date regardless of slice order.
	fields := []model.ExtractedField{
		periodField("Statement Date", "March 2020"),
		periodField("Reporting Period", "Year Ended December 31, 2019"),
	}

	start, _ := Infer(fields, nil, testNow)
	assert.Equal(t, 2019, start.Year())
}
