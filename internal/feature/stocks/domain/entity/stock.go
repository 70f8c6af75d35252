// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// Stock is a row of the instrument dimension. Symbol is the sole identity
// and is stored canonically upper-case; the ingestion job keeps at most one
// row per symbol.
type Stock struct {
	Symbol      string
	CompanyName string
	DisplayName string
	Sector      string
	Industry    string
	MarketCap   *float64
	LogoBase64  *string // embedded logo image, base64-encoded
	UpdatedDate time.Time
}

// Fundamentals is the latest pre-computed ratio set for a symbol. All values
// are computed upstream and passed through untouched.
type Fundamentals struct {
	Symbol        string
	UpdatedDate   time.Time
	PERatio       *float64
	EPS           *float64
	DividendYield *float64
	Beta          *float64
	ProfitMargin  *float64
	Week52High    *float64
	Week52Low     *float64
}
