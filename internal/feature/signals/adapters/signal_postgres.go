// Package adapters provides the repository implementation for the signals
// feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/signals/domain/entity"
	"stock_dashboard/internal/feature/signals/usecase"
)

type signalPostgres struct {
	db *gorm.DB
}

var _ usecase.SignalRepository = (*signalPostgres)(nil)

// NewSignalRepository creates a signalPostgres repository over the given DB.
func NewSignalRepository(db *gorm.DB) *signalPostgres {
	return &signalPostgres{db: db}
}

// SignalModel maps the fact_trading_signals table. The auto-increment id is
// the within-day sequence.
type SignalModel struct {
	ID         uint      `gorm:"primaryKey"`
	Symbol     string    `gorm:"size:16;not null;index:signal_sym_date,priority:1"`
	SignalDate time.Time `gorm:"not null;index:signal_sym_date,priority:2"`
	SignalType string    `gorm:"size:16;not null"`
	Reason     string    `gorm:"type:text"`
}

func (SignalModel) TableName() string {
	return "fact_trading_signals"
}

// LastBySymbol returns the most recent signals, newest first. Same-day
// signals order by descending id so repeated calls agree.
func (r *signalPostgres) LastBySymbol(ctx context.Context, symbol string, limit int) ([]entity.TradingSignal, error) {
	var rows []SignalModel
	q := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("signal_date DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.TradingSignal, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.TradingSignal{
			ID:         m.ID,
			Symbol:     m.Symbol,
			SignalDate: m.SignalDate,
			SignalType: entity.SignalType(m.SignalType),
			Reason:     m.Reason,
		})
	}
	return out, nil
}
