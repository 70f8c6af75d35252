// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Quote is one append-only snapshot of a symbol's market state at fetch
// time. The "current" quote for a symbol is the row with the greatest
// FetchTimestamp; rows are never updated in place.
type Quote struct {
	Symbol         string
	FetchTimestamp time.Time
	CurrentPrice   *float64
	ChangeAmount   *float64
	ChangePercent  *float64
	Open           *float64
	High           *float64
	Low            *float64
	Volume         *float64
	MarketCap      *float64
}
