package types

import "github.com/vnmarket/vnstock-mcp/internal/vnstock"

// FinancialResult is the envelope of a financial-statement query.
type FinancialResult struct {
	Symbol     string        `json:"symbol"`
	ReportType string        `json:"report_type"`
	Frequency  string        `json:"frequency"`
	Periods    int           `json:"periods"`
	Data       []vnstock.Row `json:"data"`
}
