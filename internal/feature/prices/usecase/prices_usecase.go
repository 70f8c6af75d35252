// Package usecase implements the business rules for the prices feature.
package usecase

import (
	"context"
	"time"

	"stock_dashboard/internal/feature/prices/domain/entity"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
)

const (
	// DefaultPeriod is the history window used when the requested period is
	// missing or unrecognized. Unknown values fall back silently, they never
	// error.
	DefaultPeriod = "1y"
	// IndicatorWindow is how many recent bars the indicators endpoint serves.
	IndicatorWindow = 100
)

// PriceRepository abstracts the daily-bar fact reads.
// Following Go convention: interfaces are defined by the consumer (usecase).
type PriceRepository interface {
	// FindSince returns a symbol's bars with trading_date >= from, ascending.
	FindSince(ctx context.Context, symbol string, from time.Time) ([]entity.DailyBar, error)
	// FindRecent returns a symbol's most recent bars, descending, capped at
	// limit.
	FindRecent(ctx context.Context, symbol string, limit int) ([]entity.DailyBar, error)
}

type pricesUsecase struct {
	prices PriceRepository
}

// NewPricesUsecase creates a new pricesUsecase instance.
func NewPricesUsecase(prices PriceRepository) *pricesUsecase {
	return &pricesUsecase{prices: prices}
}

// WindowStart resolves a period token to the inclusive start of its history
// window. Unrecognized tokens use DefaultPeriod.
func WindowStart(period string, now time.Time) time.Time {
	switch period {
	case "1w":
		return now.AddDate(0, 0, -7)
	case "1m":
		return now.AddDate(0, -1, 0)
	case "3m":
		return now.AddDate(0, -3, 0)
	case "6m":
		return now.AddDate(0, -6, 0)
	case "1y":
		return now.AddDate(-1, 0, 0)
	case "5y":
		return now.AddDate(-5, 0, 0)
	case "all":
		// "all" is bounded at ten years upstream; older bars are not kept.
		return now.AddDate(-10, 0, 0)
	default:
		return WindowStart(DefaultPeriod, now)
	}
}

// GetHistory returns a symbol's daily bars within the period window,
// ascending by trading date.
func (u *pricesUsecase) GetHistory(ctx context.Context, symbol, period string) ([]entity.DailyBar, error) {
	from := WindowStart(period, time.Now())
	return u.prices.FindSince(ctx, stocksusecase.CanonicalSymbol(symbol), from)
}

// GetIndicators returns a symbol's most recent IndicatorWindow bars,
// descending by trading date.
func (u *pricesUsecase) GetIndicators(ctx context.Context, symbol string) ([]entity.DailyBar, error) {
	return u.prices.FindRecent(ctx, stocksusecase.CanonicalSymbol(symbol), IndicatorWindow)
}
