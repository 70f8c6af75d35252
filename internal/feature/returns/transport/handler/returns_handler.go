// Package handler provides the HTTP handlers for the returns feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/returns/transport/http/dto"
	"stock_dashboard/internal/feature/returns/usecase"
	"stock_dashboard/internal/shared/format"
)

// ReturnsUsecase defines the returns operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler).
type ReturnsUsecase interface {
	ListCurrent(ctx context.Context) ([]usecase.ReturnsWithStock, error)
}

// ReturnsHandler handles HTTP requests for return snapshots.
type ReturnsHandler struct {
	uc ReturnsUsecase
}

// NewReturnsHandler creates a new ReturnsHandler with the given usecase.
func NewReturnsHandler(uc ReturnsUsecase) *ReturnsHandler {
	return &ReturnsHandler{uc: uc}
}

// List returns one row per symbol at the global-latest calculation date,
// sorted by one-year return descending.
//
// GET /api/returns
func (h *ReturnsHandler) List(c *gin.Context) {
	rows, err := h.uc.ListCurrent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch returns", "details": err.Error()})
		return
	}

	out := make([]dto.ReturnsItem, 0, len(rows))
	for _, r := range rows {
		s := r.Returns
		out = append(out, dto.ReturnsItem{
			Symbol:            s.Symbol,
			DisplayName:       r.DisplayName,
			Sector:            r.Sector,
			CalculationDate:   format.DateKey(s.CalculationDate),
			Return1D:          s.Return1D,
			Return1W:          s.Return1W,
			Return1M:          s.Return1M,
			Return3M:          s.Return3M,
			Return6M:          s.Return6M,
			Return1Y:          s.Return1Y,
			Volatility30D:     s.Volatility30D,
			SharpeRatio:       s.SharpeRatio,
			MaxDrawdown:       s.MaxDrawdown,
			Return1DDisplay:   format.ChangePercent(s.Return1D),
			Return1YDisplay:   format.ChangePercent(s.Return1Y),
			VolatilityDisplay: format.Percent(s.Volatility30D),
		})
	}
	c.JSON(http.StatusOK, out)
}
