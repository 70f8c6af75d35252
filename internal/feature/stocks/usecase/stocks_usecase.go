// Package usecase implements the business rules for the stocks feature.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	quoteentity "stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/stocks/domain/entity"
)

// ErrStockNotFound is returned when no dimension row exists for a symbol.
var ErrStockNotFound = errors.New("stock not found")

// StockRepository abstracts the instrument dimension reads.
// Following Go convention: interfaces are defined by the consumer (usecase).
type StockRepository interface {
	// ListAll returns every instrument, sorted by symbol ascending.
	ListAll(ctx context.Context) ([]entity.Stock, error)
	// FindBySymbol returns nil (without error) when the symbol is unknown.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)
	// LastUpdated returns the max updated_date across the dimension, or nil
	// when the table is empty.
	LastUpdated(ctx context.Context) (*time.Time, error)
}

// FundamentalsRepository reads the latest fundamentals row for a symbol.
type FundamentalsRepository interface {
	// LatestBySymbol returns nil (without error) when the symbol has no
	// fundamentals row.
	LatestBySymbol(ctx context.Context, symbol string) (*entity.Fundamentals, error)
}

// QuoteFinder reads the latest quote snapshot for a symbol. Implemented by
// the quotes feature's repository.
type QuoteFinder interface {
	LatestBySymbol(ctx context.Context, symbol string) (*quoteentity.Quote, error)
}

// StockDetail aggregates the dimension row with its latest fact snapshots.
// Quote and Fundamentals stay nil when no fact rows exist; that is not an
// error condition.
type StockDetail struct {
	Stock        entity.Stock
	Quote        *quoteentity.Quote
	Fundamentals *entity.Fundamentals
}

type stocksUsecase struct {
	stocks       StockRepository
	quotes       QuoteFinder
	fundamentals FundamentalsRepository
}

// NewStocksUsecase creates a new stocksUsecase instance.
func NewStocksUsecase(stocks StockRepository, quotes QuoteFinder, fundamentals FundamentalsRepository) *stocksUsecase {
	return &stocksUsecase{stocks: stocks, quotes: quotes, fundamentals: fundamentals}
}

// ListStocks returns every instrument, sorted by symbol.
func (u *stocksUsecase) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	return u.stocks.ListAll(ctx)
}

// LastUpdated returns the most recent dimension refresh timestamp, or nil
// when no instruments exist.
func (u *stocksUsecase) LastUpdated(ctx context.Context) (*time.Time, error) {
	return u.stocks.LastUpdated(ctx)
}

// GetDetail returns the instrument with its latest quote and fundamentals.
// An unknown symbol yields ErrStockNotFound; a known symbol with no fact
// rows yields nil sub-resources. A failing sub-query fails the whole call,
// partial responses are never assembled.
func (u *stocksUsecase) GetDetail(ctx context.Context, symbol string) (*StockDetail, error) {
	symbol = CanonicalSymbol(symbol)

	stock, err := u.stocks.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, ErrStockNotFound
	}

	quote, err := u.quotes.LatestBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	fundamentals, err := u.fundamentals.LatestBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}

	return &StockDetail{Stock: *stock, Quote: quote, Fundamentals: fundamentals}, nil
}

// CanonicalSymbol normalizes a user-supplied symbol to its stored form.
func CanonicalSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
