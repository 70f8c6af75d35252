// Package handler provides the HTTP handlers for the stocks feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/transport/http/dto"
	"stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/shared/format"
)

// StocksUsecase defines the stocks operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler).
type StocksUsecase interface {
	ListStocks(ctx context.Context) ([]entity.Stock, error)
	LastUpdated(ctx context.Context) (*time.Time, error)
	GetDetail(ctx context.Context, symbol string) (*usecase.StockDetail, error)
}

// StockHandler handles HTTP requests for the instrument dimension.
type StockHandler struct {
	uc StocksUsecase
}

// NewStockHandler creates a new StockHandler with the given usecase.
func NewStockHandler(uc StocksUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

func toStockItem(s entity.Stock) dto.StockItem {
	return dto.StockItem{
		Symbol:           s.Symbol,
		CompanyName:      s.CompanyName,
		DisplayName:      s.DisplayName,
		Sector:           s.Sector,
		Industry:         s.Industry,
		MarketCap:        s.MarketCap,
		LogoBase64:       s.LogoBase64,
		UpdatedDate:      format.Timestamp(s.UpdatedDate),
		MarketCapDisplay: format.MarketCap(s.MarketCap),
	}
}

// List returns every instrument, sorted by symbol.
//
// GET /api/stocks
func (h *StockHandler) List(c *gin.Context) {
	stocks, err := h.uc.ListStocks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks", "details": err.Error()})
		return
	}
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toStockItem(s))
	}
	c.JSON(http.StatusOK, out)
}

// LastUpdated returns the most recent dimension refresh timestamp, or a null
// field when no instruments exist.
//
// GET /api/stocks/last-updated
func (h *StockHandler) LastUpdated(c *gin.Context) {
	ts, err := h.uc.LastUpdated(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch last updated date", "details": err.Error()})
		return
	}
	var out dto.LastUpdatedResponse
	if ts != nil {
		s := format.Timestamp(*ts)
		out.LastUpdatedDate = &s
	}
	c.JSON(http.StatusOK, out)
}

// Detail returns an instrument with its latest quote and fundamentals.
// Missing fact rows come back as null fields; an unknown symbol is a 404.
//
// GET /api/stocks/:symbol
func (h *StockHandler) Detail(c *gin.Context) {
	detail, err := h.uc.GetDetail(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stock details", "details": err.Error()})
		return
	}

	out := dto.StockDetailResponse{Stock: toStockItem(detail.Stock)}
	if q := detail.Quote; q != nil {
		out.Quote = &dto.QuoteSnapshot{
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
			CurrentPriceDisplay:  format.Currency(q.CurrentPrice),
			ChangeDisplay:        format.Change(q.ChangeAmount),
			ChangePercentDisplay: format.ChangePercent(q.ChangePercent),
			VolumeDisplay:        format.Volume(q.Volume),
			MarketCapDisplay:     format.MarketCap(q.MarketCap),
		}
	}
	if f := detail.Fundamentals; f != nil {
		out.Fundamentals = &dto.FundamentalsItem{
			Symbol:        f.Symbol,
			UpdatedDate:   format.Timestamp(f.UpdatedDate),
			PERatio:       f.PERatio,
			EPS:           f.EPS,
			DividendYield: f.DividendYield,
			Beta:          f.Beta,
			ProfitMargin:  f.ProfitMargin,
			Week52High:    f.Week52High,
			Week52Low:     f.Week52Low,
		}
	}
	c.JSON(http.StatusOK, out)
}
