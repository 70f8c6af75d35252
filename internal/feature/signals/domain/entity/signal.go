// Package entity defines the domain models for the signals feature.
package entity

import "time"

// SignalType is the kind of trading signal. BUY and SELL are the values the
// upstream job emits today; the type stays open for new kinds.
type SignalType string

const (
	SignalBuy  SignalType = "BUY"
	SignalSell SignalType = "SELL"
)

// TradingSignal is one signal event for a symbol. ID is the insert sequence
// and disambiguates multiple signals on the same date.
type TradingSignal struct {
	ID         uint
	Symbol     string
	SignalDate time.Time
	SignalType SignalType
	Reason     string
}
