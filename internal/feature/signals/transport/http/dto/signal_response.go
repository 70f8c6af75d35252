package dto

// SignalItem is one trading signal as served by GET /api/signals/:symbol.
type SignalItem struct {
	ID                uint   `json:"id"`
	Symbol            string `json:"symbol"`
	SignalDate        string `json:"signal_date"`
	SignalType        string `json:"signal_type"`
	Reason            string `json:"reason"`
	SignalDateDisplay string `json:"signal_date_display"`
}
