// Package handler provides the HTTP handlers for the sectors feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/sectors/domain/entity"
	"stock_dashboard/internal/feature/sectors/transport/http/dto"
	"stock_dashboard/internal/shared/format"
)

// SectorsUsecase defines the sector operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler).
type SectorsUsecase interface {
	ListCurrent(ctx context.Context) ([]entity.SectorPerformance, error)
}

// SectorHandler handles HTTP requests for sector performance.
type SectorHandler struct {
	uc SectorsUsecase
}

// NewSectorHandler creates a new SectorHandler with the given usecase.
func NewSectorHandler(uc SectorsUsecase) *SectorHandler {
	return &SectorHandler{uc: uc}
}

// List returns one row per sector at the global-latest calculation date,
// sorted by average price change descending.
//
// GET /api/sectors
func (h *SectorHandler) List(c *gin.Context) {
	rows, err := h.uc.ListCurrent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sectors", "details": err.Error()})
		return
	}

	out := make([]dto.SectorItem, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.SectorItem{
			Sector:                s.Sector,
			CalculationDate:       format.DateKey(s.CalculationDate),
			AvgPriceChange:        s.AvgPriceChange,
			AvgMarketCap:          s.AvgMarketCap,
			TotalVolume:           s.TotalVolume,
			NumStocks:             s.NumStocks,
			BestPerformer:         s.BestPerformer,
			WorstPerformer:        s.WorstPerformer,
			AvgPriceChangeDisplay: format.ChangePercent(s.AvgPriceChange),
			AvgMarketCapDisplay:   format.MarketCap(s.AvgMarketCap),
			TotalVolumeDisplay:    format.Volume(s.TotalVolume),
		})
	}
	c.JSON(http.StatusOK, out)
}
