// Package entity defines the domain models for the sectors feature.
package entity

import "time"

// SectorPerformance is one sector's daily aggregate snapshot. The current
// state of the table is the row set sharing the greatest calculation date.
type SectorPerformance struct {
	Sector          string
	CalculationDate time.Time
	AvgPriceChange  *float64
	AvgMarketCap    *float64
	TotalVolume     *float64
	NumStocks       int
	BestPerformer   string
	WorstPerformer  string
}
