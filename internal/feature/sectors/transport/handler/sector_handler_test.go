package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/sectors/domain/entity"
)

type mockSectorsUsecase struct {
	listCurrentFn func(ctx context.Context) ([]entity.SectorPerformance, error)
}

func (m *mockSectorsUsecase) ListCurrent(ctx context.Context) ([]entity.SectorPerformance, error) {
	if m.listCurrentFn != nil {
		return m.listCurrentFn(ctx)
	}
	return nil, nil
}

func fp(v float64) *float64 { return &v }

func TestSectorHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Parallel()

	uc := &mockSectorsUsecase{
		listCurrentFn: func(ctx context.Context) ([]entity.SectorPerformance, error) {
			return []entity.SectorPerformance{
				{
					Sector:          "Technology",
					CalculationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
					AvgPriceChange:  fp(1.23),
					AvgMarketCap:    fp(8.5e11),
					TotalVolume:     fp(1.2e9),
					NumStocks:       12,
					BestPerformer:   "NVDA",
					WorstPerformer:  "INTC",
				},
			}, nil
		},
	}

	router := gin.New()
	router.GET("/api/sectors", NewSectorHandler(uc).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sectors", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"sector": "Technology",
		"calculation_date": "2024-01-15",
		"avg_price_change": 1.23,
		"avg_market_cap": 850000000000,
		"total_volume": 1200000000,
		"num_stocks": 12,
		"best_performer": "NVDA",
		"worst_performer": "INTC",
		"avg_price_change_display": "+1.23%",
		"avg_market_cap_display": "$850.00B",
		"total_volume_display": "1.20B"
	}]`, w.Body.String())
}

func TestSectorHandler_List_Empty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Parallel()

	router := gin.New()
	router.GET("/api/sectors", NewSectorHandler(&mockSectorsUsecase{}).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sectors", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSectorHandler_List_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Parallel()

	uc := &mockSectorsUsecase{
		listCurrentFn: func(ctx context.Context) ([]entity.SectorPerformance, error) {
			return nil, errors.New("database connection failed")
		},
	}

	router := gin.New()
	router.GET("/api/sectors", NewSectorHandler(uc).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sectors", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch sectors","details":"database connection failed"}`, w.Body.String())
}
