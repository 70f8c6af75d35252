// Package usecase implements the business rules for the signals feature.
package usecase

import (
	"context"

	"stock_dashboard/internal/feature/signals/domain/entity"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
)

// SignalWindow is how many recent signals the endpoint serves.
const SignalWindow = 20

// SignalRepository abstracts the signal fact reads.
// Following Go convention: interfaces are defined by the consumer (usecase).
type SignalRepository interface {
	// LastBySymbol returns a symbol's most recent signals, newest first,
	// capped at limit.
	LastBySymbol(ctx context.Context, symbol string, limit int) ([]entity.TradingSignal, error)
}

type signalsUsecase struct {
	signals SignalRepository
}

// NewSignalsUsecase creates a new signalsUsecase instance.
func NewSignalsUsecase(signals SignalRepository) *signalsUsecase {
	return &signalsUsecase{signals: signals}
}

// GetSignals returns a symbol's last SignalWindow signals, newest first.
func (u *signalsUsecase) GetSignals(ctx context.Context, symbol string) ([]entity.TradingSignal, error) {
	return u.signals.LastBySymbol(ctx, stocksusecase.CanonicalSymbol(symbol), SignalWindow)
}
