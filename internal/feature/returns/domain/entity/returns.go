// Package entity defines the domain models for the returns feature.
package entity

import "time"

// ReturnsSnapshot is one symbol's daily multi-horizon return and risk
// snapshot. The current state of the table is the row set sharing the
// greatest calculation date.
type ReturnsSnapshot struct {
	Symbol          string
	CalculationDate time.Time
	Return1D        *float64
	Return1W        *float64
	Return1M        *float64
	Return3M        *float64
	Return6M        *float64
	Return1Y        *float64
	Volatility30D   *float64
	SharpeRatio     *float64
	MaxDrawdown     *float64
}
