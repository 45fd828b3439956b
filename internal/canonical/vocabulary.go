package canonical

import "github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"

// vocabulary is the single source of truth for supported statement fields.
// Keys are normalized label forms (see Normalize); many synonyms map to one
// canonical key. Supporting a new field means adding an entry here, not
// touching parsing logic.
var vocabulary = map[string]Entry{
	// Revenue.
	"total revenue":     {Key: "revenue_total", Type: model.MetricKPI},
	"revenue":           {Key: "revenue_total", Type: model.MetricKPI},
	"total sales":       {Key: "revenue_total", Type: model.MetricKPI},
	"sales":             {Key: "revenue_total", Type: model.MetricKPI},
	"gross revenue":     {Key: "revenue_total", Type: model.MetricKPI},
	"total income":      {Key: "revenue_total", Type: model.MetricKPI},
	"sales revenue":     {Key: "revenue_total", Type: model.MetricRevenue},
	"service revenue":   {Key: "service_revenue", Type: model.MetricRevenue},
	"product revenue":   {Key: "product_revenue", Type: model.MetricRevenue},
	"other income":      {Key: "other_income", Type: model.MetricRevenue},
	"other revenue":     {Key: "other_income", Type: model.MetricRevenue},
	"interest income":   {Key: "interest_income", Type: model.MetricRevenue},

	// Cost of goods sold.
	"cost of goods sold": {Key: "cogs_total", Type: model.MetricExpense},
	"cogs":               {Key: "cogs_total", Type: model.MetricExpense},
	"cost of sales":      {Key: "cogs_total", Type: model.MetricExpense},
	"cost of revenue":    {Key: "cogs_total", Type: model.MetricExpense},

	// Operating expenses.
	"operating expenses":       {Key: "opex_total", Type: model.MetricExpense},
	"total operating expenses": {Key: "opex_total", Type: model.MetricExpense},
	"total expenses":           {Key: "opex_total", Type: model.MetricExpense},
	"opex":                     {Key: "opex_total", Type: model.MetricExpense},
	"salaries and wages":       {Key: "payroll_expense", Type: model.MetricExpense},
	"payroll":                  {Key: "payroll_expense", Type: model.MetricExpense},
	"payroll expenses":         {Key: "payroll_expense", Type: model.MetricExpense},
	"rent":                     {Key: "rent_expense", Type: model.MetricExpense},
	"rent expense":             {Key: "rent_expense", Type: model.MetricExpense},
	"lease expense":            {Key: "rent_expense", Type: model.MetricExpense},
	"marketing":                {Key: "marketing_expense", Type: model.MetricExpense},
	"marketing expenses":       {Key: "marketing_expense", Type: model.MetricExpense},
	"advertising":              {Key: "marketing_expense", Type: model.MetricExpense},
	"utilities":                {Key: "utilities_expense", Type: model.MetricExpense},
	"insurance":                {Key: "insurance_expense", Type: model.MetricExpense},
	"depreciation":             {Key: "depreciation_expense", Type: model.MetricExpense},
	"other expenses":           {Key: "other_expense", Type: model.MetricExpense},
	"other costs":              {Key: "other_expense", Type: model.MetricExpense},
	"interest expense":         {Key: "interest_expense", Type: model.MetricExpense},

	// Profitability KPIs.
	"gross profit":         {Key: "gross_profit", Type: model.MetricKPI},
	"gross income":         {Key: "gross_profit", Type: model.MetricKPI},
	"net income":           {Key: "net_income", Type: model.MetricKPI},
	"net profit":           {Key: "net_income", Type: model.MetricKPI},
	"net earnings":         {Key: "net_income", Type: model.MetricKPI},
	"net operating income": {Key: "net_income", Type: model.MetricKPI},
	"profit loss":          {Key: "net_income", Type: model.MetricKPI},
	"ebitda":               {Key: "ebitda", Type: model.MetricKPI},

	// Balance sheet.
	"total assets":         {Key: "total_assets", Type: model.MetricKPI},
	"current assets":       {Key: "current_assets", Type: model.MetricKPI},
	"total current assets": {Key: "current_assets", Type: model.MetricKPI},
	"total liabilities":    {Key: "total_liabilities", Type: model.MetricKPI},
	"current liabilities":  {Key: "current_liabilities", Type: model.MetricKPI},
	"total equity":         {Key: "equity_total", Type: model.MetricKPI},
	"shareholders equity":  {Key: "equity_total", Type: model.MetricKPI},
	"owners equity":        {Key: "equity_total", Type: model.MetricKPI},
	"retained earnings":    {Key: "retained_earnings", Type: model.MetricKPI},

	// Cash flow.
	"operating cash flow":                 {Key: "operating_cash_flow", Type: model.MetricKPI},
	"cash from operating activities":      {Key: "operating_cash_flow", Type: model.MetricKPI},
	"net cash from operating activities":  {Key: "operating_cash_flow", Type: model.MetricKPI},
	"investing cash flow":                 {Key: "investing_cash_flow", Type: model.MetricKPI},
	"cash from investing activities":      {Key: "investing_cash_flow", Type: model.MetricKPI},
	"financing cash flow":                 {Key: "financing_cash_flow", Type: model.MetricKPI},
	"cash from financing activities":      {Key: "financing_cash_flow", Type: model.MetricKPI},
	"net cash flow":                       {Key: "net_cash_flow", Type: model.MetricKPI},
	"net change in cash":                  {Key: "net_cash_flow", Type: model.MetricKPI},
	"net increase in cash":                {Key: "net_cash_flow", Type: model.MetricKPI},
	"cash at end of period":               {Key: "ending_cash", Type: model.MetricKPI},
	"cash and cash equivalents":           {Key: "ending_cash", Type: model.MetricKPI},
}
