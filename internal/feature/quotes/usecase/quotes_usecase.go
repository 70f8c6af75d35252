// Package usecase implements the business rules for the quotes feature:
// latest-per-symbol quote resolution, the dimension join, and the market
// summary derived from it.
package usecase

import (
	"context"
	"sort"

	"stock_dashboard/internal/feature/quotes/domain/entity"
	stockentity "stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/shared/numeric"
	"stock_dashboard/internal/shared/snapshot"
)

// MoverLimit is the number of top gainers and losers in the market summary.
const MoverLimit = 5

// QuoteRepository abstracts the quote fact reads.
// Following Go convention: interfaces are defined by the consumer (usecase).
type QuoteRepository interface {
	// ListAll returns the raw quote fact rows, unordered. The resolver
	// selects the current row per symbol in memory.
	ListAll(ctx context.Context) ([]entity.Quote, error)
	// LatestBySymbol returns the newest quote for one symbol, or nil when
	// the symbol has no quote rows.
	LatestBySymbol(ctx context.Context, symbol string) (*entity.Quote, error)
}

// StockDirectory reads the instrument dimension for the join step.
// Implemented by the stocks feature's repository.
type StockDirectory interface {
	ListAll(ctx context.Context) ([]stockentity.Stock, error)
}

// QuoteWithStock is a resolved latest quote joined to its dimension row.
// Dimension fields stay empty when no dimension row exists; the quote is
// never dropped.
type QuoteWithStock struct {
	Quote       entity.Quote
	CompanyName string
	DisplayName string
	Sector      string
}

// SummaryStats aggregates the latest-quote resolution. TotalMarketCap and
// AvgChange are nil when no resolved quote carries the underlying value.
type SummaryStats struct {
	TotalStocks    int
	TotalMarketCap *float64
	AvgChange      *float64
	Gainers        int
	Losers         int
}

// Mover is one top-gainer or top-loser row.
type Mover struct {
	Symbol        string
	CompanyName   string
	CurrentPrice  *float64
	ChangePercent *float64
}

// MarketSummary is the GET /api/summary payload before formatting.
type MarketSummary struct {
	Stats      SummaryStats
	TopGainers []Mover
	TopLosers  []Mover
}

type quotesUsecase struct {
	quotes QuoteRepository
	stocks StockDirectory
}

// NewQuotesUsecase creates a new quotesUsecase instance.
func NewQuotesUsecase(quotes QuoteRepository, stocks StockDirectory) *quotesUsecase {
	return &quotesUsecase{quotes: quotes, stocks: stocks}
}

// resolveLatest runs the latest-per-symbol resolution and the dimension
// join. Output ordering is up to the caller.
func (u *quotesUsecase) resolveLatest(ctx context.Context) ([]QuoteWithStock, error) {
	quotes, err := u.quotes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := u.stocks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	latest := snapshot.LatestPerEntity(quotes,
		func(q entity.Quote) string { return q.Symbol },
		func(q entity.Quote) int64 { return q.FetchTimestamp.UnixNano() },
	)
	joined := snapshot.JoinReference(latest, stocks,
		func(s stockentity.Stock) string { return s.Symbol },
	)

	out := make([]QuoteWithStock, 0, len(joined))
	for _, j := range joined {
		row := QuoteWithStock{Quote: j.Fact}
		if j.HasRef {
			row.CompanyName = j.Ref.CompanyName
			row.DisplayName = j.Ref.DisplayName
			row.Sector = j.Ref.Sector
		}
		out = append(out, row)
	}
	return out, nil
}

// ListLatest returns one joined row per symbol having at least one quote,
// sorted by market cap descending with missing caps last. Ties fall back to
// symbol order so repeated calls return identical listings.
func (u *quotesUsecase) ListLatest(ctx context.Context) ([]QuoteWithStock, error) {
	rows, err := u.resolveLatest(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Quote.MarketCap, rows[j].Quote.MarketCap
		if eq := (a == nil && b == nil) || (a != nil && b != nil && *a == *b); eq {
			return rows[i].Quote.Symbol < rows[j].Quote.Symbol
		}
		return numeric.DescNullsLast(a, b)
	})
	return rows, nil
}

// Summarize computes market-wide stats plus the top movers, all from the
// same latest-quote resolution. A zero change percent counts as neither
// gainer nor loser, as does a missing one.
func (u *quotesUsecase) Summarize(ctx context.Context) (*MarketSummary, error) {
	rows, err := u.resolveLatest(ctx)
	if err != nil {
		return nil, err
	}

	caps := make([]*float64, 0, len(rows))
	changes := make([]*float64, 0, len(rows))
	stats := SummaryStats{TotalStocks: len(rows)}
	for _, r := range rows {
		caps = append(caps, r.Quote.MarketCap)
		changes = append(changes, r.Quote.ChangePercent)
		if cp := r.Quote.ChangePercent; cp != nil {
			switch {
			case *cp > 0:
				stats.Gainers++
			case *cp < 0:
				stats.Losers++
			}
		}
	}
	stats.TotalMarketCap = numeric.Sum(caps)
	stats.AvgChange = numeric.Mean(changes)

	byChangeDesc := make([]QuoteWithStock, len(rows))
	copy(byChangeDesc, rows)
	sort.SliceStable(byChangeDesc, func(i, j int) bool {
		return numeric.DescNullsLast(byChangeDesc[i].Quote.ChangePercent, byChangeDesc[j].Quote.ChangePercent)
	})

	byChangeAsc := make([]QuoteWithStock, len(rows))
	copy(byChangeAsc, rows)
	sort.SliceStable(byChangeAsc, func(i, j int) bool {
		return numeric.AscNullsLast(byChangeAsc[i].Quote.ChangePercent, byChangeAsc[j].Quote.ChangePercent)
	})

	return &MarketSummary{
		Stats:      stats,
		TopGainers: movers(byChangeDesc),
		TopLosers:  movers(byChangeAsc),
	}, nil
}

func movers(rows []QuoteWithStock) []Mover {
	n := len(rows)
	if n > MoverLimit {
		n = MoverLimit
	}
	out := make([]Mover, 0, n)
	for _, r := range rows[:n] {
		out = append(out, Mover{
			Symbol:        r.Quote.Symbol,
			CompanyName:   r.CompanyName,
			CurrentPrice:  r.Quote.CurrentPrice,
			ChangePercent: r.Quote.ChangePercent,
		})
	}
	return out
}
