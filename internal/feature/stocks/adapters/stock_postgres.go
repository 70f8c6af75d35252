// Package adapters provides the repository implementations for the stocks
// feature.
package adapters

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

type stockPostgres struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockPostgres)(nil)

// NewStockRepository creates a stockPostgres repository over the given DB.
func NewStockRepository(db *gorm.DB) *stockPostgres {
	return &stockPostgres{db: db}
}

// StockModel maps the dim_stocks dimension table.
type StockModel struct {
	Symbol      string `gorm:"primaryKey;size:16"`
	CompanyName string `gorm:"size:255;not null"`
	DisplayName string `gorm:"size:255;not null"`
	Sector      string `gorm:"size:100;not null"`
	Industry    string `gorm:"size:100;not null"`
	MarketCap   *float64
	LogoBase64  *string   `gorm:"type:text"`
	UpdatedDate time.Time `gorm:"not null;index"`
}

func (StockModel) TableName() string {
	return "dim_stocks"
}

func toStock(m StockModel) entity.Stock {
	return entity.Stock{
		Symbol:      m.Symbol,
		CompanyName: m.CompanyName,
		DisplayName: m.DisplayName,
		Sector:      m.Sector,
		Industry:    m.Industry,
		MarketCap:   m.MarketCap,
		LogoBase64:  m.LogoBase64,
		UpdatedDate: m.UpdatedDate,
	}
}

// ListAll returns every instrument sorted by symbol ascending.
func (r *stockPostgres) ListAll(ctx context.Context) ([]entity.Stock, error) {
	var rows []StockModel
	if err := r.db.WithContext(ctx).
		Order("symbol ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Stock, 0, len(rows))
	for _, m := range rows {
		out = append(out, toStock(m))
	}
	return out, nil
}

// FindBySymbol returns nil when no row exists for the symbol.
func (r *stockPostgres) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var m StockModel
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	s := toStock(m)
	return &s, nil
}

// LastUpdated returns the max updated_date across the dimension, or nil on
// an empty table.
func (r *stockPostgres) LastUpdated(ctx context.Context) (*time.Time, error) {
	row := r.db.WithContext(ctx).
		Model(&StockModel{}).
		Select("MAX(updated_date)").
		Row()
	var t sql.NullTime
	if err := row.Scan(&t); err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, nil
	}
	ts := t.Time
	return &ts, nil
}

type fundamentalsPostgres struct {
	db *gorm.DB
}

var _ usecase.FundamentalsRepository = (*fundamentalsPostgres)(nil)

// NewFundamentalsRepository creates a fundamentalsPostgres repository.
func NewFundamentalsRepository(db *gorm.DB) *fundamentalsPostgres {
	return &fundamentalsPostgres{db: db}
}

// FundamentalsModel maps the fact_fundamentals table.
type FundamentalsModel struct {
	ID            uint      `gorm:"primaryKey"`
	Symbol        string    `gorm:"size:16;not null;uniqueIndex:fund_sym_date,priority:1"`
	UpdatedDate   time.Time `gorm:"not null;uniqueIndex:fund_sym_date,priority:2"`
	PERatio       *float64
	EPS           *float64
	DividendYield *float64
	Beta          *float64
	ProfitMargin  *float64
	Week52High    *float64
	Week52Low     *float64
}

func (FundamentalsModel) TableName() string {
	return "fact_fundamentals"
}

// LatestBySymbol returns the most recent fundamentals row for the symbol,
// or nil when none exist.
func (r *fundamentalsPostgres) LatestBySymbol(ctx context.Context, symbol string) (*entity.Fundamentals, error) {
	var m FundamentalsModel
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("updated_date DESC").
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entity.Fundamentals{
		Symbol:        m.Symbol,
		UpdatedDate:   m.UpdatedDate,
		PERatio:       m.PERatio,
		EPS:           m.EPS,
		DividendYield: m.DividendYield,
		Beta:          m.Beta,
		ProfitMargin:  m.ProfitMargin,
		Week52High:    m.Week52High,
		Week52Low:     m.Week52Low,
	}, nil
}
