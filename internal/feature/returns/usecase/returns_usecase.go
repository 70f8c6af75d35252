// Package usecase implements the business rules for the returns feature.
package usecase

import (
	"context"
	"sort"

	"stock_dashboard/internal/feature/returns/domain/entity"
	stockentity "stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/shared/format"
	"stock_dashboard/internal/shared/numeric"
	"stock_dashboard/internal/shared/snapshot"
)

// ReturnsRepository abstracts the returns fact reads.
// Following Go convention: interfaces are defined by the consumer (usecase).
type ReturnsRepository interface {
	// ListAll returns the raw snapshot rows; the global-latest filter runs
	// in memory.
	ListAll(ctx context.Context) ([]entity.ReturnsSnapshot, error)
}

// StockDirectory reads the instrument dimension for the join step.
// Implemented by the stocks feature's repository.
type StockDirectory interface {
	ListAll(ctx context.Context) ([]stockentity.Stock, error)
}

// ReturnsWithStock is a returns snapshot joined to its dimension row.
// Dimension fields stay empty when no dimension row exists; the snapshot is
// never dropped.
type ReturnsWithStock struct {
	Returns     entity.ReturnsSnapshot
	DisplayName string
	Sector      string
}

type returnsUsecase struct {
	returns ReturnsRepository
	stocks  StockDirectory
}

// NewReturnsUsecase creates a new returnsUsecase instance.
func NewReturnsUsecase(returns ReturnsRepository, stocks StockDirectory) *returnsUsecase {
	return &returnsUsecase{returns: returns, stocks: stocks}
}

// ListCurrent returns one row per symbol at the global-latest calculation
// date, joined to dimension data and sorted by one-year return descending
// with missing values last. An empty fact table yields an empty result.
func (u *returnsUsecase) ListCurrent(ctx context.Context) ([]ReturnsWithStock, error) {
	rows, err := u.returns.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := u.stocks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	dateKey := func(r entity.ReturnsSnapshot) string { return format.DateKey(r.CalculationDate) }
	latest, ok := snapshot.GlobalLatestPeriod(rows, dateKey)
	if !ok {
		return []ReturnsWithStock{}, nil
	}
	current := snapshot.FilterByPeriod(rows, dateKey, latest)

	// One row per (symbol, date) is an upstream invariant; resolving per
	// symbol makes the join key unique even if ingestion ever violates it.
	bySymbol := snapshot.LatestPerEntity(current,
		func(r entity.ReturnsSnapshot) string { return r.Symbol },
		dateKey,
	)
	joined := snapshot.JoinReference(bySymbol, stocks,
		func(s stockentity.Stock) string { return s.Symbol },
	)

	out := make([]ReturnsWithStock, 0, len(joined))
	for _, j := range joined {
		row := ReturnsWithStock{Returns: j.Fact}
		if j.HasRef {
			row.DisplayName = j.Ref.DisplayName
			row.Sector = j.Ref.Sector
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Returns.Return1Y, out[j].Returns.Return1Y
		if eq := (a == nil && b == nil) || (a != nil && b != nil && *a == *b); eq {
			return out[i].Returns.Symbol < out[j].Returns.Symbol
		}
		return numeric.DescNullsLast(a, b)
	})
	return out, nil
}
