package dto

// SectorItem is one sector aggregate at the latest calculation date, as
// served by GET /api/sectors.
type SectorItem struct {
	Sector                string   `json:"sector"`
	CalculationDate       string   `json:"calculation_date"`
	AvgPriceChange        *float64 `json:"avg_price_change"`
	AvgMarketCap          *float64 `json:"avg_market_cap"`
	TotalVolume           *float64 `json:"total_volume"`
	NumStocks             int      `json:"num_stocks"`
	BestPerformer         string   `json:"best_performer"`
	WorstPerformer        string   `json:"worst_performer"`
	AvgPriceChangeDisplay string   `json:"avg_price_change_display"`
	AvgMarketCapDisplay   string   `json:"avg_market_cap_display"`
	TotalVolumeDisplay    string   `json:"total_volume_display"`
}
