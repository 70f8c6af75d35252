package dto

// IncomeItem is one fiscal quarter of income figures.
type IncomeItem struct {
	Symbol          string   `json:"symbol"`
	FiscalDate      string   `json:"fiscal_date"`
	TotalRevenue    *float64 `json:"total_revenue"`
	GrossProfit     *float64 `json:"gross_profit"`
	OperatingIncome *float64 `json:"operating_income"`
	NetIncome       *float64 `json:"net_income"`
}

// BalanceItem is one fiscal quarter of balance figures.
type BalanceItem struct {
	Symbol             string   `json:"symbol"`
	FiscalDate         string   `json:"fiscal_date"`
	TotalAssets        *float64 `json:"total_assets"`
	TotalLiabilities   *float64 `json:"total_liabilities"`
	TotalEquity        *float64 `json:"total_equity"`
	CashAndEquivalents *float64 `json:"cash_and_equivalents"`
}

// CashflowItem is one fiscal quarter of cash flow figures.
type CashflowItem struct {
	Symbol            string   `json:"symbol"`
	FiscalDate        string   `json:"fiscal_date"`
	OperatingCashflow *float64 `json:"operating_cashflow"`
	InvestingCashflow *float64 `json:"investing_cashflow"`
	FinancingCashflow *float64 `json:"financing_cashflow"`
	FreeCashflow      *float64 `json:"free_cashflow"`
}

// FinancialsResponse is the GET /api/financials/:symbol body: the last
// quarters of each statement variant, fiscal date descending. Variants with
// no rows are empty arrays, never null.
type FinancialsResponse struct {
	Income   []IncomeItem   `json:"income"`
	Balance  []BalanceItem  `json:"balance"`
	Cashflow []CashflowItem `json:"cashflow"`
}
