package dto

// ReturnsItem is one symbol's latest returns snapshot joined to dimension
// data, as served by GET /api/returns.
type ReturnsItem struct {
	Symbol            string   `json:"symbol"`
	DisplayName       string   `json:"display_name"`
	Sector            string   `json:"sector"`
	CalculationDate   string   `json:"calculation_date"`
	Return1D          *float64 `json:"return_1d"`
	Return1W          *float64 `json:"return_1w"`
	Return1M          *float64 `json:"return_1m"`
	Return3M          *float64 `json:"return_3m"`
	Return6M          *float64 `json:"return_6m"`
	Return1Y          *float64 `json:"return_1y"`
	Volatility30D     *float64 `json:"volatility_30d"`
	SharpeRatio       *float64 `json:"sharpe_ratio"`
	MaxDrawdown       *float64 `json:"max_drawdown"`
	Return1DDisplay   string   `json:"return_1d_display"`
	Return1YDisplay   string   `json:"return_1y_display"`
	VolatilityDisplay string   `json:"volatility_display"`
}
