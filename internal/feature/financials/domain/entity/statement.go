// Package entity defines the domain models for the financials feature.
// Statement values are quarterly, one row per (symbol, fiscal date) per
// statement type, computed upstream and passed through untouched.
package entity

import "time"

// IncomeStatement is one fiscal quarter of income figures.
type IncomeStatement struct {
	Symbol          string
	FiscalDate      time.Time
	TotalRevenue    *float64
	GrossProfit     *float64
	OperatingIncome *float64
	NetIncome       *float64
}

// BalanceSheet is one fiscal quarter of balance figures.
type BalanceSheet struct {
	Symbol             string
	FiscalDate         time.Time
	TotalAssets        *float64
	TotalLiabilities   *float64
	TotalEquity        *float64
	CashAndEquivalents *float64
}

// CashFlow is one fiscal quarter of cash flow figures.
type CashFlow struct {
	Symbol            string
	FiscalDate        time.Time
	OperatingCashflow *float64
	InvestingCashflow *float64
	FinancingCashflow *float64
	FreeCashflow      *float64
}

// Statements bundles the three statement variants for one symbol, each
// ordered by fiscal date descending.
type Statements struct {
	Income   []IncomeStatement
	Balance  []BalanceSheet
	Cashflow []CashFlow
}
