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

	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

type mockStocksUsecase struct {
	listStocksFn  func(ctx context.Context) ([]entity.Stock, error)
	lastUpdatedFn func(ctx context.Context) (*time.Time, error)
	getDetailFn   func(ctx context.Context, symbol string) (*usecase.StockDetail, error)
}

func (m *mockStocksUsecase) ListStocks(ctx context.Context) ([]entity.Stock, error) {
	if m.listStocksFn != nil {
		return m.listStocksFn(ctx)
	}
	return nil, nil
}

func (m *mockStocksUsecase) LastUpdated(ctx context.Context) (*time.Time, error) {
	if m.lastUpdatedFn != nil {
		return m.lastUpdatedFn(ctx)
	}
	return nil, nil
}

func (m *mockStocksUsecase) GetDetail(ctx context.Context, symbol string) (*usecase.StockDetail, error) {
	if m.getDetailFn != nil {
		return m.getDetailFn(ctx, symbol)
	}
	return nil, nil
}

func fp(v float64) *float64 { return &v }

func newRouter(h *StockHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/stocks", h.List)
	r.GET("/api/stocks/last-updated", h.LastUpdated)
	r.GET("/api/stocks/:symbol", h.Detail)
	return r
}

func TestStockHandler_List(t *testing.T) {
	t.Parallel()

	uc := &mockStocksUsecase{
		listStocksFn: func(ctx context.Context) ([]entity.Stock, error) {
			return []entity.Stock{
				{
					Symbol:      "AAPL",
					CompanyName: "Apple Inc.",
					DisplayName: "Apple",
					Sector:      "Technology",
					Industry:    "Consumer Electronics",
					MarketCap:   fp(2.85e12),
					UpdatedDate: time.Date(2024, 1, 15, 16, 30, 0, 0, time.UTC),
				},
			}, nil
		},
	}

	router := newRouter(NewStockHandler(uc))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"symbol": "AAPL",
		"company_name": "Apple Inc.",
		"display_name": "Apple",
		"sector": "Technology",
		"industry": "Consumer Electronics",
		"market_cap": 2850000000000,
		"logo_base64": null,
		"updated_date": "2024-01-15T16:30:00Z",
		"market_cap_display": "$2.85T"
	}]`, w.Body.String())
}

func TestStockHandler_List_Empty(t *testing.T) {
	t.Parallel()

	router := newRouter(NewStockHandler(&mockStocksUsecase{}))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStockHandler_List_Error(t *testing.T) {
	t.Parallel()

	uc := &mockStocksUsecase{
		listStocksFn: func(ctx context.Context) ([]entity.Stock, error) {
			return nil, errors.New("database connection failed")
		},
	}

	router := newRouter(NewStockHandler(uc))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch stocks","details":"database connection failed"}`, w.Body.String())
}

func TestStockHandler_LastUpdated(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 15, 16, 30, 0, 0, time.UTC)
	uc := &mockStocksUsecase{
		lastUpdatedFn: func(ctx context.Context) (*time.Time, error) {
			return &ts, nil
		},
	}

	router := newRouter(NewStockHandler(uc))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks/last-updated", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"last_updated_date":"2024-01-15T16:30:00Z"}`, w.Body.String())
}

func TestStockHandler_LastUpdated_EmptyDimension(t *testing.T) {
	t.Parallel()

	router := newRouter(NewStockHandler(&mockStocksUsecase{}))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks/last-updated", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"last_updated_date":null}`, w.Body.String())
}

func TestStockHandler_Detail_NilFactRows(t *testing.T) {
	t.Parallel()

	uc := &mockStocksUsecase{
		getDetailFn: func(ctx context.Context, symbol string) (*usecase.StockDetail, error) {
			return &usecase.StockDetail{
				Stock: entity.Stock{
					Symbol:      "NEWCO",
					CompanyName: "New Company",
					DisplayName: "NewCo",
					Sector:      "Technology",
					Industry:    "Software",
					UpdatedDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}

	router := newRouter(NewStockHandler(uc))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks/NEWCO", nil)
	router.ServeHTTP(w, req)

	// Missing fact rows are null sub-objects, still a 200
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"stock": {
			"symbol": "NEWCO",
			"company_name": "New Company",
			"display_name": "NewCo",
			"sector": "Technology",
			"industry": "Software",
			"market_cap": null,
			"logo_base64": null,
			"updated_date": "2024-01-15T00:00:00Z",
			"market_cap_display": "$0"
		},
		"quote": null,
		"fundamentals": null
	}`, w.Body.String())
}

func TestStockHandler_Detail_NotFound(t *testing.T) {
	t.Parallel()

	uc := &mockStocksUsecase{
		getDetailFn: func(ctx context.Context, symbol string) (*usecase.StockDetail, error) {
			return nil, usecase.ErrStockNotFound
		},
	}

	router := newRouter(NewStockHandler(uc))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks/NOPE", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Stock not found"}`, w.Body.String())
}

func TestStockHandler_Detail_Error(t *testing.T) {
	t.Parallel()

	uc := &mockStocksUsecase{
		getDetailFn: func(ctx context.Context, symbol string) (*usecase.StockDetail, error) {
			return nil, errors.New("database connection failed")
		},
	}

	router := newRouter(NewStockHandler(uc))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks/AAPL", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch stock details","details":"database connection failed"}`, w.Body.String())
}
