// Package adapters provides the repository implementation for the sectors
// feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/sectors/domain/entity"
	"stock_dashboard/internal/feature/sectors/usecase"
)

type sectorPostgres struct {
	db *gorm.DB
}

var _ usecase.SectorRepository = (*sectorPostgres)(nil)

// NewSectorRepository creates a sectorPostgres repository over the given DB.
func NewSectorRepository(db *gorm.DB) *sectorPostgres {
	return &sectorPostgres{db: db}
}

// SectorModel maps the fact_sector_performance table: one row per sector per
// calculation date.
type SectorModel struct {
	ID              uint      `gorm:"primaryKey"`
	Sector          string    `gorm:"size:100;not null;uniqueIndex:sector_name_date,priority:1"`
	CalculationDate time.Time `gorm:"not null;uniqueIndex:sector_name_date,priority:2"`
	AvgPriceChange  *float64
	AvgMarketCap    *float64
	TotalVolume     *float64
	NumStocks       int    `gorm:"not null;default:0"`
	BestPerformer   string `gorm:"size:16"`
	WorstPerformer  string `gorm:"size:16"`
}

func (SectorModel) TableName() string {
	return "fact_sector_performance"
}

// ListAll returns the raw snapshot rows in insertion order.
func (r *sectorPostgres) ListAll(ctx context.Context) ([]entity.SectorPerformance, error) {
	var rows []SectorModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.SectorPerformance, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.SectorPerformance{
			Sector:          m.Sector,
			CalculationDate: m.CalculationDate,
			AvgPriceChange:  m.AvgPriceChange,
			AvgMarketCap:    m.AvgMarketCap,
			TotalVolume:     m.TotalVolume,
			NumStocks:       m.NumStocks,
			BestPerformer:   m.BestPerformer,
			WorstPerformer:  m.WorstPerformer,
		})
	}
	return out, nil
}
