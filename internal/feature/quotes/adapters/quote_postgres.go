// Package adapters provides the repository implementation for the quotes
// feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/quotes/usecase"
)

type quotePostgres struct {
	db *gorm.DB
}

var _ usecase.QuoteRepository = (*quotePostgres)(nil)

// NewQuoteRepository creates a quotePostgres repository over the given DB.
func NewQuoteRepository(db *gorm.DB) *quotePostgres {
	return &quotePostgres{db: db}
}

// QuoteModel maps the append-only fact_realtime_quotes table.
type QuoteModel struct {
	ID             uint      `gorm:"primaryKey"`
	Symbol         string    `gorm:"size:16;not null;uniqueIndex:quote_sym_fetch,priority:1"`
	FetchTimestamp time.Time `gorm:"not null;uniqueIndex:quote_sym_fetch,priority:2"`
	CurrentPrice   *float64
	ChangeAmount   *float64
	ChangePercent  *float64
	Open           *float64
	High           *float64
	Low            *float64
	Volume         *float64
	MarketCap      *float64
}

func (QuoteModel) TableName() string {
	return "fact_realtime_quotes"
}

func toQuote(m QuoteModel) entity.Quote {
	return entity.Quote{
		Symbol:         m.Symbol,
		FetchTimestamp: m.FetchTimestamp,
		CurrentPrice:   m.CurrentPrice,
		ChangeAmount:   m.ChangeAmount,
		ChangePercent:  m.ChangePercent,
		Open:           m.Open,
		High:           m.High,
		Low:            m.Low,
		Volume:         m.Volume,
		MarketCap:      m.MarketCap,
	}
}

// ListAll returns the raw quote fact rows. Insertion order is preserved so
// the in-memory resolver's tie-break stays stable across calls.
func (r *quotePostgres) ListAll(ctx context.Context) ([]entity.Quote, error) {
	var rows []QuoteModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Quote, 0, len(rows))
	for _, m := range rows {
		out = append(out, toQuote(m))
	}
	return out, nil
}

// LatestBySymbol returns the newest quote for a symbol, or nil when the
// symbol has no quote rows.
func (r *quotePostgres) LatestBySymbol(ctx context.Context, symbol string) (*entity.Quote, error) {
	var m QuoteModel
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("fetch_timestamp DESC").
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	q := toQuote(m)
	return &q, nil
}
