package dto

// StockItem is one instrument row as served by GET /api/stocks.
type StockItem struct {
	Symbol           string   `json:"symbol"`
	CompanyName      string   `json:"company_name"`
	DisplayName      string   `json:"display_name"`
	Sector           string   `json:"sector"`
	Industry         string   `json:"industry"`
	MarketCap        *float64 `json:"market_cap"`
	LogoBase64       *string  `json:"logo_base64"`
	UpdatedDate      string   `json:"updated_date"`
	MarketCapDisplay string   `json:"market_cap_display"`
}

// LastUpdatedResponse carries the dimension's most recent refresh timestamp.
// LastUpdatedDate is null when the dimension is empty.
type LastUpdatedResponse struct {
	LastUpdatedDate *string `json:"last_updated_date"`
}

// QuoteSnapshot is the latest quote embedded in a stock detail response.
type QuoteSnapshot struct {
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
	CurrentPriceDisplay  string   `json:"current_price_display"`
	ChangeDisplay        string   `json:"change_display"`
	ChangePercentDisplay string   `json:"change_percent_display"`
	VolumeDisplay        string   `json:"volume_display"`
	MarketCapDisplay     string   `json:"market_cap_display"`
}

// FundamentalsItem is the latest fundamentals row embedded in a stock detail
// response.
type FundamentalsItem struct {
	Symbol        string   `json:"symbol"`
	UpdatedDate   string   `json:"updated_date"`
	PERatio       *float64 `json:"pe_ratio"`
	EPS           *float64 `json:"eps"`
	DividendYield *float64 `json:"dividend_yield"`
	Beta          *float64 `json:"beta"`
	ProfitMargin  *float64 `json:"profit_margin"`
	Week52High    *float64 `json:"week_52_high"`
	Week52Low     *float64 `json:"week_52_low"`
}

// StockDetailResponse is the GET /api/stocks/:symbol body. Quote and
// Fundamentals are null when the symbol has no fact rows; the response is
// still a 200.
type StockDetailResponse struct {
	Stock        StockItem         `json:"stock"`
	Quote        *QuoteSnapshot    `json:"quote"`
	Fundamentals *FundamentalsItem `json:"fundamentals"`
}
