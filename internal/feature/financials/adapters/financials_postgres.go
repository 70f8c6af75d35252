// Package adapters provides the repository implementation for the
// financials feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/financials/domain/entity"
	"stock_dashboard/internal/feature/financials/usecase"
)

type financialsPostgres struct {
	db *gorm.DB
}

var _ usecase.FinancialsRepository = (*financialsPostgres)(nil)

// NewFinancialsRepository creates a financialsPostgres repository over the
// given DB.
func NewFinancialsRepository(db *gorm.DB) *financialsPostgres {
	return &financialsPostgres{db: db}
}

// IncomeModel maps the fact_income_statement table.
type IncomeModel struct {
	ID              uint      `gorm:"primaryKey"`
	Symbol          string    `gorm:"size:16;not null;uniqueIndex:income_sym_date,priority:1"`
	FiscalDate      time.Time `gorm:"not null;uniqueIndex:income_sym_date,priority:2"`
	TotalRevenue    *float64
	GrossProfit     *float64
	OperatingIncome *float64
	NetIncome       *float64
}

func (IncomeModel) TableName() string {
	return "fact_income_statement"
}

// BalanceModel maps the fact_balance_sheet table.
type BalanceModel struct {
	ID                 uint      `gorm:"primaryKey"`
	Symbol             string    `gorm:"size:16;not null;uniqueIndex:balance_sym_date,priority:1"`
	FiscalDate         time.Time `gorm:"not null;uniqueIndex:balance_sym_date,priority:2"`
	TotalAssets        *float64
	TotalLiabilities   *float64
	TotalEquity        *float64
	CashAndEquivalents *float64
}

func (BalanceModel) TableName() string {
	return "fact_balance_sheet"
}

// CashflowModel maps the fact_cash_flow table.
type CashflowModel struct {
	ID                uint      `gorm:"primaryKey"`
	Symbol            string    `gorm:"size:16;not null;uniqueIndex:cashflow_sym_date,priority:1"`
	FiscalDate        time.Time `gorm:"not null;uniqueIndex:cashflow_sym_date,priority:2"`
	OperatingCashflow *float64
	InvestingCashflow *float64
	FinancingCashflow *float64
	FreeCashflow      *float64
}

func (CashflowModel) TableName() string {
	return "fact_cash_flow"
}

// LastIncome returns the most recent income statements, fiscal date
// descending, capped at limit.
func (r *financialsPostgres) LastIncome(ctx context.Context, symbol string, limit int) ([]entity.IncomeStatement, error) {
	var rows []IncomeModel
	if err := r.lastQuarters(ctx, symbol, limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.IncomeStatement, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.IncomeStatement{
			Symbol:          m.Symbol,
			FiscalDate:      m.FiscalDate,
			TotalRevenue:    m.TotalRevenue,
			GrossProfit:     m.GrossProfit,
			OperatingIncome: m.OperatingIncome,
			NetIncome:       m.NetIncome,
		})
	}
	return out, nil
}

// LastBalance returns the most recent balance sheets, fiscal date
// descending, capped at limit.
func (r *financialsPostgres) LastBalance(ctx context.Context, symbol string, limit int) ([]entity.BalanceSheet, error) {
	var rows []BalanceModel
	if err := r.lastQuarters(ctx, symbol, limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.BalanceSheet, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.BalanceSheet{
			Symbol:             m.Symbol,
			FiscalDate:         m.FiscalDate,
			TotalAssets:        m.TotalAssets,
			TotalLiabilities:   m.TotalLiabilities,
			TotalEquity:        m.TotalEquity,
			CashAndEquivalents: m.CashAndEquivalents,
		})
	}
	return out, nil
}

// LastCashflow returns the most recent cash flow statements, fiscal date
// descending, capped at limit.
func (r *financialsPostgres) LastCashflow(ctx context.Context, symbol string, limit int) ([]entity.CashFlow, error) {
	var rows []CashflowModel
	if err := r.lastQuarters(ctx, symbol, limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.CashFlow, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.CashFlow{
			Symbol:            m.Symbol,
			FiscalDate:        m.FiscalDate,
			OperatingCashflow: m.OperatingCashflow,
			InvestingCashflow: m.InvestingCashflow,
			FinancingCashflow: m.FinancingCashflow,
			FreeCashflow:      m.FreeCashflow,
		})
	}
	return out, nil
}

func (r *financialsPostgres) lastQuarters(ctx context.Context, symbol string, limit int) *gorm.DB {
	q := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("fiscal_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}
