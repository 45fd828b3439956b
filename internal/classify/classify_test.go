package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

func TestDetectStatementType_Filename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     model.StatementType
	}{
		{name: "profit loss csv", filename: "2023_profit_loss.csv", want: model.StatementProfitLoss},
		{name: "p&l abbreviation", filename: "Q4 P&L.xlsx", want: model.StatementProfitLoss},
		{name: "income statement", filename: "income-statement.pdf", want: model.StatementProfitLoss},
		{name: "cash flow", filename: "cash_flow_2024.csv", want: model.StatementCashFlow},
		{name: "balance sheet", filename: "balance_sheet.xlsx", want: model.StatementBalanceSheet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectStatementType(tt.filename, nil))
		})
	}
}

func TestDetectStatementType_Content(t *testing.T) {
	got := DetectStatementType("upload.pdf", []string{"Total Assets", "Total Liabilities", "Equity"})
	assert.Equal(t, model.StatementBalanceSheet, got)

	got = DetectStatementType("upload.pdf", []string{"Revenue", "Gross Profit"})
	assert.Equal(t, model.StatementProfitLoss, got)
}

func TestDetectStatementType_Default(t *testing.T) {
	assert.Equal(t, model.StatementProfitLoss, DetectStatementType("scan001.pdf", []string{"mystery"}))
}

func TestCategorize_ProfitLoss(t *testing.T) {
	tests := []struct {
		label    string
		wantName string
		wantType string
	}{
		{label: "Total Revenue", wantName: "Revenue", wantType: TypeRevenue},
		{label: "Cost of Goods Sold", wantName: "Cost of Goods Sold", wantType: TypeExpense},
		{label: "Cost of Sales", wantName: "Cost of Goods Sold", wantType: TypeExpense},
		{label: "Salaries and Wages", wantName: "Personnel Expenses", wantType: TypeExpense},
		{label: "Office Rent", wantName: "Facility Expenses", wantType: TypeExpense},
		{label: "Advertising", wantName: "Marketing Expenses", wantType: TypeExpense},
		{label: "Misc Expense", wantName: "Operating Expenses", wantType: TypeExpense},
		{label: "Goodwill Amortization", wantName: "Other", wantType: TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := Categorize(tt.label, model.StatementProfitLoss)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantType, got.Type)
		})
	}
}

func TestCategorize_BalanceSheet(t *testing.T) {
	got := Categorize("Accounts Receivable", model.StatementBalanceSheet)
	assert.Equal(t, "Current Assets", got.Name)
	assert.Equal(t, TypeAsset, got.Type)

	got = Categorize("Accounts Payable", model.StatementBalanceSheet)
	assert.Equal(t, "Current Liabilities", got.Name)
	assert.Equal(t, TypeLiability, got.Type)

	got = Categorize("Retained Earnings", model.StatementBalanceSheet)
	assert.Equal(t, "Equity", got.Name)
	assert.Equal(t, TypeEquity, got.Type)
}

func TestCategorize_CashFlow(t *testing.T) {
	got := Categorize("Cash from Operating Activities", model.StatementCashFlow)
	assert.Equal(t, "Operating Activities", got.Name)
	assert.Equal(t, TypeCashInflow, got.Type)

	got = Categorize("Purchase of Equipment", model.StatementCashFlow)
	assert.Equal(t, "Investing Activities", got.Name)
	assert.Equal(t, TypeCashOutflow, got.Type)
}
