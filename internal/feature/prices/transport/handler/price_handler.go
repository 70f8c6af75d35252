// Package handler provides the HTTP handlers for the prices feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/prices/domain/entity"
	"stock_dashboard/internal/feature/prices/transport/http/dto"
	"stock_dashboard/internal/feature/prices/usecase"
	"stock_dashboard/internal/shared/format"
)

// PricesUsecase defines the price operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler).
type PricesUsecase interface {
	GetHistory(ctx context.Context, symbol, period string) ([]entity.DailyBar, error)
	GetIndicators(ctx context.Context, symbol string) ([]entity.DailyBar, error)
}

// PriceHandler handles HTTP requests for daily bars and indicator series.
type PriceHandler struct {
	uc PricesUsecase
}

// NewPriceHandler creates a new PriceHandler with the given usecase.
func NewPriceHandler(uc PricesUsecase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// History returns a symbol's daily bars within the requested period window,
// ascending by trading date. Unknown period tokens fall back to the default
// window instead of erroring.
//
// GET /api/prices/:symbol?period=1y
func (h *PriceHandler) History(c *gin.Context) {
	symbol := c.Param("symbol")
	period := c.DefaultQuery("period", usecase.DefaultPeriod)

	bars, err := h.uc.GetHistory(c.Request.Context(), symbol, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prices", "details": err.Error()})
		return
	}

	out := make([]dto.PriceBar, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.PriceBar{
			TradingDate:    format.DateKey(b.TradingDate),
			Open:           b.Open,
			High:           b.High,
			Low:            b.Low,
			Close:          b.Close,
			Volume:         b.Volume,
			MA20:           b.MA20,
			MA50:           b.MA50,
			MA200:          b.MA200,
			RSI14:          b.RSI14,
			MACD:           b.MACD,
			BollingerUpper: b.BollingerUpper,
			BollingerLower: b.BollingerLower,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Indicators returns a symbol's most recent bars' indicator fields,
// descending by trading date.
//
// GET /api/indicators/:symbol
func (h *PriceHandler) Indicators(c *gin.Context) {
	bars, err := h.uc.GetIndicators(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch indicators", "details": err.Error()})
		return
	}

	out := make([]dto.IndicatorPoint, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.IndicatorPoint{
			TradingDate:     format.DateKey(b.TradingDate),
			Close:           b.Close,
			MA20:            b.MA20,
			MA50:            b.MA50,
			MA200:           b.MA200,
			RSI14:           b.RSI14,
			MACD:            b.MACD,
			MACDSignal:      b.MACDSignal,
			MACDHistogram:   b.MACDHistogram,
			BollingerUpper:  b.BollingerUpper,
			BollingerMiddle: b.BollingerMiddle,
			BollingerLower:  b.BollingerLower,
			StochasticK:     b.StochasticK,
			StochasticD:     b.StochasticD,
			Volume:          b.Volume,
			AvgVolume20:     b.AvgVolume20,
		})
	}
	c.JSON(http.StatusOK, out)
}
