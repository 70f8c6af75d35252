// Package adapters provides the repository implementation for the returns
// feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/returns/domain/entity"
	"stock_dashboard/internal/feature/returns/usecase"
)

type returnsPostgres struct {
	db *gorm.DB
}

var _ usecase.ReturnsRepository = (*returnsPostgres)(nil)

// NewReturnsRepository creates a returnsPostgres repository over the given DB.
func NewReturnsRepository(db *gorm.DB) *returnsPostgres {
	return &returnsPostgres{db: db}
}

// ReturnsModel maps the fact_returns table: one row per symbol per
// calculation date.
type ReturnsModel struct {
	ID              uint      `gorm:"primaryKey"`
	Symbol          string    `gorm:"size:16;not null;uniqueIndex:returns_sym_date,priority:1"`
	CalculationDate time.Time `gorm:"not null;uniqueIndex:returns_sym_date,priority:2"`
	Return1D        *float64  `gorm:"column:return_1d"`
	Return1W        *float64  `gorm:"column:return_1w"`
	Return1M        *float64  `gorm:"column:return_1m"`
	Return3M        *float64  `gorm:"column:return_3m"`
	Return6M        *float64  `gorm:"column:return_6m"`
	Return1Y        *float64  `gorm:"column:return_1y"`
	Volatility30D   *float64  `gorm:"column:volatility_30d"`
	SharpeRatio     *float64
	MaxDrawdown     *float64
}

func (ReturnsModel) TableName() string {
	return "fact_returns"
}

// ListAll returns the raw snapshot rows in insertion order.
func (r *returnsPostgres) ListAll(ctx context.Context) ([]entity.ReturnsSnapshot, error) {
	var rows []ReturnsModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.ReturnsSnapshot, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.ReturnsSnapshot{
			Symbol:          m.Symbol,
			CalculationDate: m.CalculationDate,
			Return1D:        m.Return1D,
			Return1W:        m.Return1W,
			Return1M:        m.Return1M,
			Return3M:        m.Return3M,
			Return6M:        m.Return6M,
			Return1Y:        m.Return1Y,
			Volatility30D:   m.Volatility30D,
			SharpeRatio:     m.SharpeRatio,
			MaxDrawdown:     m.MaxDrawdown,
		})
	}
	return out, nil
}
