package classify

import (
	"strings"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

// Category is the semantic bucket assigned to one extracted row.
type Category struct {
	Name string
	Type string
}

// Category type constants derived from category names.
const (
	TypeRevenue     = "revenue"
	TypeExpense     = "expense"
	TypeAsset       = "asset"
	TypeLiability   = "liability"
	TypeEquity      = "equity"
	TypeCashInflow  = "cash_inflow"
	TypeCashOutflow = "cash_outflow"
	TypeOther       = "other"
)

// categoryRule maps label keywords to a category name, checked in order.
type categoryRule struct {
	name     string
	keywords []string
}

var pnlRules = []categoryRule{
	{name: "Cost of Goods Sold", keywords: []string{"cost of goods", "cogs", "cost of sales"}},
	{name: "Revenue", keywords: []string{"revenue", "sales", "income"}},
	{name: "Personnel Expenses", keywords: []string{"salary", "salaries", "wage", "payroll"}},
	{name: "Facility Expenses", keywords: []string{"rent", "lease", "utilities"}},
	{name: "Marketing Expenses", keywords: []string{"marketing", "advertising"}},
	{name: "Operating Expenses", keywords: []string{"expense", "cost"}},
}

var balanceSheetRules = []categoryRule{
	{name: "Current Assets", keywords: []string{"cash", "receivable", "inventory", "current asset"}},
	{name: "Fixed Assets", keywords: []string{"property", "equipment", "depreciation", "fixed asset"}},
	{name: "Current Liabilities", keywords: []string{"payable", "accrued", "current liabilit"}},
	{name: "Long-Term Liabilities", keywords: []string{"loan", "mortgage", "long term", "long-term"}},
	{name: "Equity", keywords: []string{"equity", "capital", "retained"}},
	{name: "Assets", keywords: []string{"asset"}},
	{name: "Liabilities", keywords: []string{"liabilit"}},
}

var cashFlowRules = []categoryRule{
	{name: "Operating Activities", keywords: []string{"operating", "operations"}},
	{name: "Investing Activities", keywords: []string{"investing", "investment", "purchase of"}},
	{name: "Financing Activities", keywords: []string{"financing", "dividend", "loan", "borrowing"}},
	{name: "Cash Position", keywords: []string{"cash at", "beginning", "ending", "net change"}},
}

// Categorize assigns a label to a semantic category for the detected
// statement type. First matching rule wins; anything unmatched lands in
// "Other".
func Categorize(label string, statementType model.StatementType) Category {
	lower := strings.ToLower(label)

	var rules []categoryRule
	switch statementType {
	case model.StatementBalanceSheet:
		rules = balanceSheetRules
	case model.StatementCashFlow:
		rules = cashFlowRules
	case model.StatementProfitLoss:
		rules = pnlRules
	default:
		rules = pnlRules
	}

	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return Category{Name: rule.name, Type: categoryType(rule.name)}
			}
		}
	}

	return Category{Name: "Other", Type: TypeOther}
}

// categoryType derives the coarse type from the category name via a second
// keyword pass.
func categoryType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "revenue"):
		return TypeRevenue
	case strings.Contains(lower, "expense") || strings.Contains(lower, "cost"):
		return TypeExpense
	case strings.Contains(lower, "asset"):
		return TypeAsset
	case strings.Contains(lower, "liabilit"):
		return TypeLiability
	case strings.Contains(lower, "equity"):
		return TypeEquity
	case strings.Contains(lower, "operating") || strings.Contains(lower, "cash position"):
		return TypeCashInflow
	case strings.Contains(lower, "investing") || strings.Contains(lower, "financing"):
		return TypeCashOutflow
	default:
		return TypeOther
	}
}
