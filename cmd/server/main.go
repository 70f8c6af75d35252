package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_dashboard/internal/app/router"
	financialsadapters "stock_dashboard/internal/feature/financials/adapters"
	financialshandler "stock_dashboard/internal/feature/financials/transport/handler"
	financialsusecase "stock_dashboard/internal/feature/financials/usecase"
	pricesadapters "stock_dashboard/internal/feature/prices/adapters"
	priceshandler "stock_dashboard/internal/feature/prices/transport/handler"
	pricesusecase "stock_dashboard/internal/feature/prices/usecase"
	quotesadapters "stock_dashboard/internal/feature/quotes/adapters"
	quoteshandler "stock_dashboard/internal/feature/quotes/transport/handler"
	quotesusecase "stock_dashboard/internal/feature/quotes/usecase"
	returnsadapters "stock_dashboard/internal/feature/returns/adapters"
	returnshandler "stock_dashboard/internal/feature/returns/transport/handler"
	returnsusecase "stock_dashboard/internal/feature/returns/usecase"
	sectorsadapters "stock_dashboard/internal/feature/sectors/adapters"
	sectorshandler "stock_dashboard/internal/feature/sectors/transport/handler"
	sectorsusecase "stock_dashboard/internal/feature/sectors/usecase"
	signalsadapters "stock_dashboard/internal/feature/signals/adapters"
	signalshandler "stock_dashboard/internal/feature/signals/transport/handler"
	signalsusecase "stock_dashboard/internal/feature/signals/usecase"
	stocksadapters "stock_dashboard/internal/feature/stocks/adapters"
	stockshandler "stock_dashboard/internal/feature/stocks/transport/handler"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/platform/cache"
	platformdb "stock_dashboard/internal/platform/db"
	platformredis "stock_dashboard/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments inject env directly.
	_ = godotenv.Load()

	db := platformdb.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	stockRepo := stocksadapters.NewStockRepository(db)
	fundamentalsRepo := stocksadapters.NewFundamentalsRepository(db)
	quoteRepo := quotesadapters.NewQuoteRepository(db)
	priceRepo := pricesadapters.NewPriceRepository(db)
	sectorRepo := sectorsadapters.NewSectorRepository(db)
	returnsRepo := returnsadapters.NewReturnsRepository(db)
	financialsRepo := financialsadapters.NewFinancialsRepository(db)
	signalRepo := signalsadapters.NewSignalRepository(db)

	// Redis caching layer. Quote facts refresh every minute; daily snapshot
	// tables roll at the UTC day boundary.
	cachedQuoteRepo := cache.NewCachingQuoteRepository(rdb, time.Minute, quoteRepo, "quotes")
	dailyTTL := cache.TimeUntilNextMidnightUTC()
	cachedSectorRepo := cache.NewCachingListRepository(rdb, dailyTTL, "sectors:all", sectorRepo.ListAll)
	cachedReturnsRepo := cache.NewCachingListRepository(rdb, dailyTTL, "returns:all", returnsRepo.ListAll)

	// Usecases
	stocksUC := stocksusecase.NewStocksUsecase(stockRepo, cachedQuoteRepo, fundamentalsRepo)
	quotesUC := quotesusecase.NewQuotesUsecase(cachedQuoteRepo, stockRepo)
	pricesUC := pricesusecase.NewPricesUsecase(priceRepo)
	sectorsUC := sectorsusecase.NewSectorsUsecase(cachedSectorRepo)
	returnsUC := returnsusecase.NewReturnsUsecase(cachedReturnsRepo, stockRepo)
	financialsUC := financialsusecase.NewFinancialsUsecase(financialsRepo)
	signalsUC := signalsusecase.NewSignalsUsecase(signalRepo)

	// Handlers
	h := router.Handlers{
		Stocks:     stockshandler.NewStockHandler(stocksUC),
		Quotes:     quoteshandler.NewQuoteHandler(quotesUC),
		Prices:     priceshandler.NewPriceHandler(pricesUC),
		Sectors:    sectorshandler.NewSectorHandler(sectorsUC),
		Returns:    returnshandler.NewReturnsHandler(returnsUC),
		Financials: financialshandler.NewFinancialsHandler(financialsUC),
		Signals:    signalshandler.NewSignalHandler(signalsUC),
	}

	r := router.NewRouter(db, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
