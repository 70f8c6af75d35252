// Package handler provides the HTTP handlers for the quotes feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/quotes/transport/http/dto"
	"stock_dashboard/internal/feature/quotes/usecase"
	"stock_dashboard/internal/shared/format"
)

// QuotesUsecase defines the quote operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler).
type QuotesUsecase interface {
	ListLatest(ctx context.Context) ([]usecase.QuoteWithStock, error)
	Summarize(ctx context.Context) (*usecase.MarketSummary, error)
}

// QuoteHandler handles HTTP requests for latest quotes and the market
// summary.
type QuoteHandler struct {
	uc QuotesUsecase
}

// NewQuoteHandler creates a new QuoteHandler with the given usecase.
func NewQuoteHandler(uc QuotesUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// List returns one latest quote per symbol, joined to dimension data and
// sorted by market cap descending with missing caps last.
//
// GET /api/quotes
func (h *QuoteHandler) List(c *gin.Context) {
	rows, err := h.uc.ListLatest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotes", "details": err.Error()})
		return
	}

	out := make([]dto.QuoteItem, 0, len(rows))
	for _, r := range rows {
		q := r.Quote
		out = append(out, dto.QuoteItem{
			Symbol:               q.Symbol,
			FetchTimestamp:       format.Timestamp(q.FetchTimestamp),
			CurrentPrice:         q.CurrentPrice,
			ChangeAmount:         q.ChangeAmount,
			ChangePercent:        q.ChangePercent,
			Open:                 q.Open,
			High:                 q.High,
			Low:                  q.Low,
			Volume:               q.Volume,
			MarketCap:            q.MarketCap,
			CompanyName:          r.CompanyName,
			DisplayName:          r.DisplayName,
			Sector:               r.Sector,
			CurrentPriceDisplay:  format.Currency(q.CurrentPrice),
			ChangeDisplay:        format.Change(q.ChangeAmount),
			ChangePercentDisplay: format.ChangePercent(q.ChangePercent),
			VolumeDisplay:        format.Volume(q.Volume),
			MarketCapDisplay:     format.MarketCap(q.MarketCap),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Summary returns market-wide aggregates plus the top five gainers and
// losers, all derived from the same latest-quote resolution.
//
// GET /api/summary
func (h *QuoteHandler) Summary(c *gin.Context) {
	summary, err := h.uc.Summarize(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary", "details": err.Error()})
		return
	}

	out := dto.SummaryResponse{
		Stats: dto.SummaryStats{
			TotalStocks:           summary.Stats.TotalStocks,
			TotalMarketCap:        summary.Stats.TotalMarketCap,
			AvgChange:             summary.Stats.AvgChange,
			Gainers:               summary.Stats.Gainers,
			Losers:                summary.Stats.Losers,
			TotalMarketCapDisplay: format.MarketCap(summary.Stats.TotalMarketCap),
			AvgChangeDisplay:      format.ChangePercent(summary.Stats.AvgChange),
		},
		TopGainers: toMoverItems(summary.TopGainers),
		TopLosers:  toMoverItems(summary.TopLosers),
	}
	c.JSON(http.StatusOK, out)
}

func toMoverItems(ms []usecase.Mover) []dto.MoverItem {
	out := make([]dto.MoverItem, 0, len(ms))
	for _, m := range ms {
		out = append(out, dto.MoverItem{
			Symbol:               m.Symbol,
			CompanyName:          m.CompanyName,
			CurrentPrice:         m.CurrentPrice,
			ChangePercent:        m.ChangePercent,
			CurrentPriceDisplay:  format.Currency(m.CurrentPrice),
			ChangePercentDisplay: format.ChangePercent(m.ChangePercent),
		})
	}
	return out
}
