package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

func metric(key string, value float64) model.CanonicalMetric {
	return model.CanonicalMetric{
		CanonicalKey: key,
		Label:        key,
		Type:         model.MetricKPI,
		Value:        value,
		Confidence:   1.0,
	}
}

func TestCompute_Formulas(t *testing.T) {
	metrics := []model.CanonicalMetric{
		metric("revenue_total", 1000000),
		metric("cogs_total", 400000),
		metric("opex_total", 200000),
	}

	set := Compute(metrics)
	assert.InDelta(t, 1000000.0, set.RevenueTotal, 1e-9)
	assert.InDelta(t, 600000.0, set.ExpenseTotal, 1e-9)
	assert.InDelta(t, 600000.0, set.GrossProfit, 1e-9)
	assert.InDelta(t, 400000.0, set.NetIncome, 1e-9)
	assert.InDelta(t, 60.0, set.GrossMarginPct, 1e-9)
	assert.InDelta(t, 40.0, set.NetMarginPct, 1e-9)
}

func TestCompute_ZeroRevenue(t *testing.T) {
	metrics := []model.CanonicalMetric{
		metric("cogs_total", 5000),
		metric("opex_total", 2500),
	}

	set := Compute(metrics)
	assert.Zero(t, set.GrossMarginPct, "margin must be 0, not NaN, when revenue is zero")
	assert.Zero(t, set.NetMarginPct)
	assert.InDelta(t, -5000.0, set.GrossProfit, 1e-9)
	assert.InDelta(t, -7500.0, set.NetIncome, 1e-9)
}

func TestCompute_SynonymsAlreadyFolded(t *testing.T) {
	// Multiple metrics sharing one canonical key sum together.
	metrics := []model.CanonicalMetric{
		metric("revenue_total", 600),
		metric("revenue_total", 400),
	}

	set := Compute(metrics)
	assert.InDelta(t, 1000.0, set.RevenueTotal, 1e-9)
	assert.InDelta(t, 100.0, set.GrossMarginPct, 1e-9)
}

func TestCompute_Empty(t *testing.T) {
	set := Compute(nil)
	assert.Zero(t, set.RevenueTotal)
	assert.Zero(t, set.GrossMarginPct)
}
