// Package handler provides the HTTP handlers for the signals feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/signals/domain/entity"
	"stock_dashboard/internal/feature/signals/transport/http/dto"
	"stock_dashboard/internal/shared/format"
)

// SignalsUsecase defines the signal operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler).
type SignalsUsecase interface {
	GetSignals(ctx context.Context, symbol string) ([]entity.TradingSignal, error)
}

// SignalHandler handles HTTP requests for trading signals.
type SignalHandler struct {
	uc SignalsUsecase
}

// NewSignalHandler creates a new SignalHandler with the given usecase.
func NewSignalHandler(uc SignalsUsecase) *SignalHandler {
	return &SignalHandler{uc: uc}
}

// List returns a symbol's last twenty signals, newest first.
//
// GET /api/signals/:symbol
func (h *SignalHandler) List(c *gin.Context) {
	signals, err := h.uc.GetSignals(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signals", "details": err.Error()})
		return
	}

	out := make([]dto.SignalItem, 0, len(signals))
	for _, s := range signals {
		d := s.SignalDate
		out = append(out, dto.SignalItem{
			ID:                s.ID,
			Symbol:            s.Symbol,
			SignalDate:        format.DateKey(d),
			SignalType:        string(s.SignalType),
			Reason:            s.Reason,
			SignalDateDisplay: format.DateLong(&d),
		})
	}
	c.JSON(http.StatusOK, out)
}
