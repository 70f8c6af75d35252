// Package router assembles the gin engine and wires every HTTP route.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	financialshandler "stock_dashboard/internal/feature/financials/transport/handler"
	priceshandler "stock_dashboard/internal/feature/prices/transport/handler"
	quoteshandler "stock_dashboard/internal/feature/quotes/transport/handler"
	returnshandler "stock_dashboard/internal/feature/returns/transport/handler"
	sectorshandler "stock_dashboard/internal/feature/sectors/transport/handler"
	signalshandler "stock_dashboard/internal/feature/signals/transport/handler"
	stockshandler "stock_dashboard/internal/feature/stocks/transport/handler"
	platformhandler "stock_dashboard/internal/platform/http/handler"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Stocks     *stockshandler.StockHandler
	Quotes     *quoteshandler.QuoteHandler
	Prices     *priceshandler.PriceHandler
	Sectors    *sectorshandler.SectorHandler
	Returns    *returnshandler.ReturnsHandler
	Financials *financialshandler.FinancialsHandler
	Signals    *signalshandler.SignalHandler
}

// NewRouter builds the gin engine with CORS, health endpoints and the
// read-only API routes.
func NewRouter(db *gorm.DB, h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
			"https://*.vercel.app",
		},
		AllowWildcard:    true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness and readiness
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)
	r.GET("/health", platformhandler.Readiness(db))

	api := r.Group("/api")
	{
		api.GET("/stocks", h.Stocks.List)
		api.GET("/stocks/last-updated", h.Stocks.LastUpdated)
		api.GET("/stocks/:symbol", h.Stocks.Detail)
		api.GET("/quotes", h.Quotes.List)
		api.GET("/summary", h.Quotes.Summary)
		api.GET("/prices/:symbol", h.Prices.History)
		api.GET("/indicators/:symbol", h.Prices.Indicators)
		api.GET("/sectors", h.Sectors.List)
		api.GET("/returns", h.Returns.List)
		api.GET("/financials/:symbol", h.Financials.Statements)
		api.GET("/signals/:symbol", h.Signals.List)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	return r
}
