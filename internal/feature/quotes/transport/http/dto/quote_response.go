package dto

// QuoteItem is one resolved latest quote joined to its dimension row, as
// served by GET /api/quotes.
type QuoteItem struct {
	Symbol               string   `json:"symbol"`
	FetchTimestamp       string   `json:"fetch_timestamp"`
	CurrentPrice         *float64 `json:"current_price"`
	ChangeAmount         *float64 `json:"change_amount"`
	ChangePercent        *float64 `json:"change_percent"`
	Open                 *float64 `json:"open"`
	High                 *float64 `json:"high"`
	Low                  *float64 `json:"low"`
	Volume               *float64 `json:"volume"`
	MarketCap            *float64 `json:"market_cap"`
	CompanyName          string   `json:"company_name"`
	DisplayName          string   `json:"display_name"`
	Sector               string   `json:"sector"`
	CurrentPriceDisplay  string   `json:"current_price_display"`
	ChangeDisplay        string   `json:"change_display"`
	ChangePercentDisplay string   `json:"change_percent_display"`
	VolumeDisplay        string   `json:"volume_display"`
	MarketCapDisplay     string   `json:"market_cap_display"`
}

// SummaryStats is the aggregate block of GET /api/summary.
type SummaryStats struct {
	TotalStocks           int      `json:"total_stocks"`
	TotalMarketCap        *float64 `json:"total_market_cap"`
	AvgChange             *float64 `json:"avg_change"`
	Gainers               int      `json:"gainers"`
	Losers                int      `json:"losers"`
	TotalMarketCapDisplay string   `json:"total_market_cap_display"`
	AvgChangeDisplay      string   `json:"avg_change_display"`
}

// MoverItem is one top-gainer or top-loser row.
type MoverItem struct {
	Symbol               string   `json:"symbol"`
	CompanyName          string   `json:"company_name"`
	CurrentPrice         *float64 `json:"current_price"`
	ChangePercent        *float64 `json:"change_percent"`
	CurrentPriceDisplay  string   `json:"current_price_display"`
	ChangePercentDisplay string   `json:"change_percent_display"`
}

// SummaryResponse is the GET /api/summary body.
type SummaryResponse struct {
	Stats      SummaryStats `json:"stats"`
	TopGainers []MoverItem  `json:"topGainers"`
	TopLosers  []MoverItem  `json:"topLosers"`
}
