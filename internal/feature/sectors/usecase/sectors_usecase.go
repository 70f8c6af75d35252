// Package usecase implements the business rules for the sectors feature.
package usecase

import (
	"context"
	"sort"

	"stock_dashboard/internal/feature/sectors/domain/entity"
	"stock_dashboard/internal/shared/format"
	"stock_dashboard/internal/shared/numeric"
	"stock_dashboard/internal/shared/snapshot"
)

// SectorRepository abstracts the sector performance fact reads.
// Following Go convention: interfaces are defined by the consumer (usecase).
type SectorRepository interface {
	// ListAll returns the raw snapshot rows; the global-latest filter runs
	// in memory.
	ListAll(ctx context.Context) ([]entity.SectorPerformance, error)
}

type sectorsUsecase struct {
	sectors SectorRepository
}

// NewSectorsUsecase creates a new sectorsUsecase instance.
func NewSectorsUsecase(sectors SectorRepository) *sectorsUsecase {
	return &sectorsUsecase{sectors: sectors}
}

// ListCurrent returns one row per sector at the global-latest calculation
// date, sorted by average price change descending with missing values last.
// An empty fact table yields an empty result, never an error.
func (u *sectorsUsecase) ListCurrent(ctx context.Context) ([]entity.SectorPerformance, error) {
	rows, err := u.sectors.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	dateKey := func(r entity.SectorPerformance) string { return format.DateKey(r.CalculationDate) }
	latest, ok := snapshot.GlobalLatestPeriod(rows, dateKey)
	if !ok {
		return []entity.SectorPerformance{}, nil
	}
	current := snapshot.FilterByPeriod(rows, dateKey, latest)

	sort.SliceStable(current, func(i, j int) bool {
		return numeric.DescNullsLast(current[i].AvgPriceChange, current[j].AvgPriceChange)
	})
	return current, nil
}
