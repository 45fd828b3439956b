// Package classify infers statement types and assigns extracted rows to
// semantic categories using keyword heuristics. Classification is best
// effort, first match wins; results feed human review, not accounting.
package classify

import (
	"strings"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

// DetectStatementType infers which statement a document is. The filename is
// checked first, then the concatenated cell text; profit-and-loss is the
// default when nothing matches.
func DetectStatementType(filename string, cells []string) model.StatementType {
	name := strings.ToLower(filename)
	switch {
	case containsAny(name, "profit", "loss", "p&l", "pnl", "income"):
		return model.StatementProfitLoss
	case containsAny(name, "cash", "flow"):
		return model.StatementCashFlow
	case containsAny(name, "balance", "sheet"):
		return model.StatementBalanceSheet
	}

	text := strings.ToLower(strings.Join(cells, " "))
	switch {
	case containsAny(text, "revenue", "sales", "gross profit", "net income"):
		return model.StatementProfitLoss
	case containsAny(text, "cash flow", "operating activities"):
		return model.StatementCashFlow
	case containsAny(text, "assets", "liabilities", "equity"):
		return model.StatementBalanceSheet
	}

	return model.StatementProfitLoss
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
