// Package adapters provides the repository implementation for the prices
// feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/prices/domain/entity"
	"stock_dashboard/internal/feature/prices/usecase"
)

type pricePostgres struct {
	db *gorm.DB
}

var _ usecase.PriceRepository = (*pricePostgres)(nil)

// NewPriceRepository creates a pricePostgres repository over the given DB.
func NewPriceRepository(db *gorm.DB) *pricePostgres {
	return &pricePostgres{db: db}
}

// BarModel maps the fact_daily_prices table: one row per symbol per trading
// date, indicator columns filled in by the upstream job.
type BarModel struct {
	ID          uint      `gorm:"primaryKey"`
	Symbol      string    `gorm:"size:16;not null;uniqueIndex:bar_sym_date,priority:1"`
	TradingDate time.Time `gorm:"not null;uniqueIndex:bar_sym_date,priority:2"`

	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *float64

	MA20            *float64 `gorm:"column:ma_20"`
	MA50            *float64 `gorm:"column:ma_50"`
	MA200           *float64 `gorm:"column:ma_200"`
	RSI14           *float64 `gorm:"column:rsi_14"`
	MACD            *float64 `gorm:"column:macd"`
	MACDSignal      *float64 `gorm:"column:macd_signal"`
	MACDHistogram   *float64 `gorm:"column:macd_histogram"`
	BollingerUpper  *float64 `gorm:"column:bollinger_upper"`
	BollingerMiddle *float64 `gorm:"column:bollinger_middle"`
	BollingerLower  *float64 `gorm:"column:bollinger_lower"`
	StochasticK     *float64 `gorm:"column:stochastic_k"`
	StochasticD     *float64 `gorm:"column:stochastic_d"`
	AvgVolume20     *float64 `gorm:"column:avg_volume_20"`
}

func (BarModel) TableName() string {
	return "fact_daily_prices"
}

func toBar(m BarModel) entity.DailyBar {
	return entity.DailyBar{
		Symbol:          m.Symbol,
		TradingDate:     m.TradingDate,
		Open:            m.Open,
		High:            m.High,
		Low:             m.Low,
		Close:           m.Close,
		Volume:          m.Volume,
		MA20:            m.MA20,
		MA50:            m.MA50,
		MA200:           m.MA200,
		RSI14:           m.RSI14,
		MACD:            m.MACD,
		MACDSignal:      m.MACDSignal,
		MACDHistogram:   m.MACDHistogram,
		BollingerUpper:  m.BollingerUpper,
		BollingerMiddle: m.BollingerMiddle,
		BollingerLower:  m.BollingerLower,
		StochasticK:     m.StochasticK,
		StochasticD:     m.StochasticD,
		AvgVolume20:     m.AvgVolume20,
	}
}

func toBars(rows []BarModel) []entity.DailyBar {
	out := make([]entity.DailyBar, 0, len(rows))
	for _, m := range rows {
		out = append(out, toBar(m))
	}
	return out
}

// FindSince returns bars with trading_date >= from, ascending.
func (r *pricePostgres) FindSince(ctx context.Context, symbol string, from time.Time) ([]entity.DailyBar, error) {
	var rows []BarModel
	if err := r.db.WithContext(ctx).
		Where("symbol = ? AND trading_date >= ?", symbol, from).
		Order("trading_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toBars(rows), nil
}

// FindRecent returns the most recent bars, descending, capped at limit.
func (r *pricePostgres) FindRecent(ctx context.Context, symbol string, limit int) ([]entity.DailyBar, error) {
	var rows []BarModel
	q := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("trading_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toBars(rows), nil
}
