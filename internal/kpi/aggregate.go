// Package kpi computes top-level indicators from a document's canonical
// metrics.
package kpi

import (
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/money"
)

// Compute derives the KPI set from canonical metrics. It is a pure function:
// the result is never persisted independently of the metrics it summarizes.
// Margins are 0, never NaN, when revenue is zero.
func Compute(metrics []model.CanonicalMetric) model.DocumentKPISet {
	var revenue, cogs, opex float64
	for _, m := range metrics {
		switch m.CanonicalKey {
		case "revenue_total":
			revenue += m.Value
		case "cogs_total":
			cogs += m.Value
		case "opex_total":
			opex += m.Value
		}
	}

	set := model.DocumentKPISet{
		RevenueTotal: revenue,
		ExpenseTotal: cogs + opex,
		GrossProfit:  revenue - cogs,
	}
	set.NetIncome = set.GrossProfit - opex

	if revenue > 0 {
		set.GrossMarginPct = money.Round2(set.GrossProfit / revenue * 100)
		set.NetMarginPct = money.Round2(set.NetIncome / revenue * 100)
	}

	return set
}
