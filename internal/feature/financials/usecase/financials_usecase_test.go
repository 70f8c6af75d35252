package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/financials/domain/entity"
)

type mockFinancialsRepository struct {
	lastIncomeFn   func(ctx context.Context, symbol string, limit int) ([]entity.IncomeStatement, error)
	lastBalanceFn  func(ctx context.Context, symbol string, limit int) ([]entity.BalanceSheet, error)
	lastCashflowFn func(ctx context.Context, symbol string, limit int) ([]entity.CashFlow, error)
}

func (m *mockFinancialsRepository) LastIncome(ctx context.Context, symbol string, limit int) ([]entity.IncomeStatement, error) {
	if m.lastIncomeFn != nil {
		return m.lastIncomeFn(ctx, symbol, limit)
	}
	return nil, nil
}

func (m *mockFinancialsRepository) LastBalance(ctx context.Context, symbol string, limit int) ([]entity.BalanceSheet, error) {
	if m.lastBalanceFn != nil {
		return m.lastBalanceFn(ctx, symbol, limit)
	}
	return nil, nil
}

func (m *mockFinancialsRepository) LastCashflow(ctx context.Context, symbol string, limit int) ([]entity.CashFlow, error) {
	if m.lastCashflowFn != nil {
		return m.lastCashflowFn(ctx, symbol, limit)
	}
	return nil, nil
}

func TestFinancialsUsecase_GetStatements(t *testing.T) {
	t.Parallel()

	fiscal := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)
	repo := &mockFinancialsRepository{
		lastIncomeFn: func(ctx context.Context, symbol string, limit int) ([]entity.IncomeStatement, error) {
			assert.Equal(t, "AAPL", symbol, "symbol should be canonicalized before lookup")
			assert.Equal(t, QuarterWindow, limit)
			return []entity.IncomeStatement{{Symbol: "AAPL", FiscalDate: fiscal}}, nil
		},
		lastBalanceFn: func(ctx context.Context, symbol string, limit int) ([]entity.BalanceSheet, error) {
			return []entity.BalanceSheet{{Symbol: "AAPL", FiscalDate: fiscal}}, nil
		},
	}

	uc := NewFinancialsUsecase(repo)
	statements, err := uc.GetStatements(context.Background(), " aapl ")

	require.NoError(t, err)
	assert.Len(t, statements.Income, 1)
	assert.Len(t, statements.Balance, 1)
	// A variant with no rows is an empty slice, not an error
	assert.Empty(t, statements.Cashflow)
}

func TestFinancialsUsecase_GetStatements_SubQueryError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("balance query failed")
	repo := &mockFinancialsRepository{
		lastIncomeFn: func(ctx context.Context, symbol string, limit int) ([]entity.IncomeStatement, error) {
			return []entity.IncomeStatement{{Symbol: "AAPL"}}, nil
		},
		lastBalanceFn: func(ctx context.Context, symbol string, limit int) ([]entity.BalanceSheet, error) {
			return nil, expectedErr
		},
	}

	uc := NewFinancialsUsecase(repo)
	statements, err := uc.GetStatements(context.Background(), "AAPL")

	// A failing sub-query fails the whole call; no partial statements
	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, statements)
}
