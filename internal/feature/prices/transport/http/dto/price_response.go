package dto

// PriceBar is one daily bar as served by GET /api/prices/:symbol. The
// history view only needs the chart-facing indicator subset.
type PriceBar struct {
	TradingDate    string   `json:"trading_date"`
	Open           *float64 `json:"open"`
	High           *float64 `json:"high"`
	Low            *float64 `json:"low"`
	Close          *float64 `json:"close"`
	Volume         *float64 `json:"volume"`
	MA20           *float64 `json:"ma_20"`
	MA50           *float64 `json:"ma_50"`
	MA200          *float64 `json:"ma_200"`
	RSI14          *float64 `json:"rsi_14"`
	MACD           *float64 `json:"macd"`
	BollingerUpper *float64 `json:"bollinger_upper"`
	BollingerLower *float64 `json:"bollinger_lower"`
}

// IndicatorPoint is one bar's full indicator set as served by
// GET /api/indicators/:symbol.
type IndicatorPoint struct {
	TradingDate     string   `json:"trading_date"`
	Close           *float64 `json:"close"`
	MA20            *float64 `json:"ma_20"`
	MA50            *float64 `json:"ma_50"`
	MA200           *float64 `json:"ma_200"`
	RSI14           *float64 `json:"rsi_14"`
	MACD            *float64 `json:"macd"`
	MACDSignal      *float64 `json:"macd_signal"`
	MACDHistogram   *float64 `json:"macd_histogram"`
	BollingerUpper  *float64 `json:"bollinger_upper"`
	BollingerMiddle *float64 `json:"bollinger_middle"`
	BollingerLower  *float64 `json:"bollinger_lower"`
	StochasticK     *float64 `json:"stochastic_k"`
	StochasticD     *float64 `json:"stochastic_d"`
	Volume          *float64 `json:"volume"`
	AvgVolume20     *float64 `json:"avg_volume_20"`
}
