// Package entity defines the domain models for the prices feature.
package entity

import "time"

// DailyBar is one trading day of OHLCV data plus the technical indicator
// fields the upstream job pre-computes. Indicator values are opaque here;
// nothing is recomputed at request time.
type DailyBar struct {
	Symbol      string
	TradingDate time.Time
	Open        *float64
	High        *float64
	Low         *float64
	Close       *float64
	Volume      *float64

	MA20            *float64
	MA50            *float64
	MA200           *float64
	RSI14           *float64
	MACD            *float64
	MACDSignal      *float64
	MACDHistogram   *float64
	BollingerUpper  *float64
	BollingerMiddle *float64
	BollingerLower  *float64
	StochasticK     *float64
	StochasticD     *float64
	AvgVolume20     *float64
}
