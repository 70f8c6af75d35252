package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/prices/domain/entity"
)

type mockPriceRepository struct {
	findSinceFn  func(ctx context.Context, symbol string, from time.Time) ([]entity.DailyBar, error)
	findRecentFn func(ctx context.Context, symbol string, limit int) ([]entity.DailyBar, error)
}

func (m *mockPriceRepository) FindSince(ctx context.Context, symbol string, from time.Time) ([]entity.DailyBar, error) {
	if m.findSinceFn != nil {
		return m.findSinceFn(ctx, symbol, from)
	}
	return nil, nil
}

func (m *mockPriceRepository) FindRecent(ctx context.Context, symbol string, limit int) ([]entity.DailyBar, error) {
	if m.findRecentFn != nil {
		return m.findRecentFn(ctx, symbol, limit)
	}
	return nil, nil
}

func TestWindowStart(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period   string
		expected time.Time
	}{
		{"1w", time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC)},
		{"1m", time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)},
		{"3m", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)},
		{"6m", time.Date(2023, 12, 15, 12, 0, 0, 0, time.UTC)},
		{"1y", time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"5y", time.Date(2019, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"all", time.Date(2014, 6, 15, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.period, func(t *testing.T) {
			t.Parallel()
			assert.True(t, WindowStart(tt.period, now).Equal(tt.expected),
				"WindowStart(%q) = %v, expected %v", tt.period, WindowStart(tt.period, now), tt.expected)
		})
	}
}

func TestWindowStart_UnknownPeriodFallsBack(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	oneYear := WindowStart("1y", now)

	for _, period := range []string{"", "2y", "bogus", "1Y"} {
		assert.True(t, WindowStart(period, now).Equal(oneYear),
			"period %q should fall back to the 1y window", period)
	}
}

func TestPricesUsecase_GetHistory_CanonicalizesSymbol(t *testing.T) {
	t.Parallel()

	var gotSymbol string
	var gotFrom time.Time
	repo := &mockPriceRepository{
		findSinceFn: func(ctx context.Context, symbol string, from time.Time) ([]entity.DailyBar, error) {
			gotSymbol = symbol
			gotFrom = from
			return []entity.DailyBar{{Symbol: symbol}}, nil
		},
	}

	uc := NewPricesUsecase(repo)
	bars, err := uc.GetHistory(context.Background(), " aapl ", "1m")

	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, "AAPL", gotSymbol)

	expectedFrom := time.Now().AddDate(0, -1, 0)
	assert.WithinDuration(t, expectedFrom, gotFrom, time.Minute)
}

func TestPricesUsecase_GetIndicators_UsesWindow(t *testing.T) {
	t.Parallel()

	var gotLimit int
	repo := &mockPriceRepository{
		findRecentFn: func(ctx context.Context, symbol string, limit int) ([]entity.DailyBar, error) {
			gotLimit = limit
			assert.Equal(t, "MSFT", symbol)
			return nil, nil
		},
	}

	uc := NewPricesUsecase(repo)
	_, err := uc.GetIndicators(context.Background(), "msft")

	require.NoError(t, err)
	assert.Equal(t, IndicatorWindow, gotLimit)
}
