// Package db opens the GORM connection to the Postgres store.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	financialsadapters "stock_dashboard/internal/feature/financials/adapters"
	pricesadapters "stock_dashboard/internal/feature/prices/adapters"
	quotesadapters "stock_dashboard/internal/feature/quotes/adapters"
	returnsadapters "stock_dashboard/internal/feature/returns/adapters"
	sectorsadapters "stock_dashboard/internal/feature/sectors/adapters"
	signalsadapters "stock_dashboard/internal/feature/signals/adapters"
	stocksadapters "stock_dashboard/internal/feature/stocks/adapters"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// OpenDB connects to Postgres using env configuration, retrying for up to a
// minute so the server survives a database that is still coming up.
func OpenDB() *gorm.DB {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASSWORD", "")
	name := getEnv("DB_NAME", "stock_dashboard")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, user, pass, name, sslmode)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get database instance: %v", err)
	}
	// Read-only workload: a small pool with long-lived connections.
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// The schema is owned by the ingestion job; migrations here are for
	// local development against an empty database.
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&stocksadapters.StockModel{},
			&stocksadapters.FundamentalsModel{},
			&quotesadapters.QuoteModel{},
			&pricesadapters.BarModel{},
			&sectorsadapters.SectorModel{},
			&returnsadapters.ReturnsModel{},
			&financialsadapters.IncomeModel{},
			&financialsadapters.BalanceModel{},
			&financialsadapters.CashflowModel{},
			&signalsadapters.SignalModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
