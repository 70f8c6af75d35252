// Package usecase implements the business rules for the financials feature.
package usecase

import (
	"context"

	"stock_dashboard/internal/feature/financials/domain/entity"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
)

// QuarterWindow is how many fiscal quarters each statement variant serves.
const QuarterWindow = 8

// FinancialsRepository abstracts the statement fact reads.
// Following Go convention: interfaces are defined by the consumer (usecase).
type FinancialsRepository interface {
	LastIncome(ctx context.Context, symbol string, limit int) ([]entity.IncomeStatement, error)
	LastBalance(ctx context.Context, symbol string, limit int) ([]entity.BalanceSheet, error)
	LastCashflow(ctx context.Context, symbol string, limit int) ([]entity.CashFlow, error)
}

type financialsUsecase struct {
	financials FinancialsRepository
}

// NewFinancialsUsecase creates a new financialsUsecase instance.
func NewFinancialsUsecase(financials FinancialsRepository) *financialsUsecase {
	return &financialsUsecase{financials: financials}
}

// GetStatements returns the last QuarterWindow quarters of each statement
// variant, fiscal date descending. A variant with no rows comes back as an
// empty slice, but a failing sub-query fails the whole call.
func (u *financialsUsecase) GetStatements(ctx context.Context, symbol string) (*entity.Statements, error) {
	symbol = stocksusecase.CanonicalSymbol(symbol)

	income, err := u.financials.LastIncome(ctx, symbol, QuarterWindow)
	if err != nil {
		return nil, err
	}
	balance, err := u.financials.LastBalance(ctx, symbol, QuarterWindow)
	if err != nil {
		return nil, err
	}
	cashflow, err := u.financials.LastCashflow(ctx, symbol, QuarterWindow)
	if err != nil {
		return nil, err
	}

	return &entity.Statements{Income: income, Balance: balance, Cashflow: cashflow}, nil
}
