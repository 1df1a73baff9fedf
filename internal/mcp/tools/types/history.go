package types

import "github.com/vnmarket/vnstock-mcp/internal/vnstock"

// HistoryResult is the envelope of a historical-data query.
type HistoryResult struct {
	Symbol     string        `json:"symbol"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Resolution string        `json:"resolution"`
	DataPoints int           `json:"data_points"`
	Data       []vnstock.Bar `json:"data"`
}
