package vnstock

import (
	"errors"
	"fmt"
)

// ErrNoData signals that the provider answered but had nothing for the
// requested input. Callers surface it as a descriptive message, not a failure.
var ErrNoData = errors.New("vnstock: no data")

// Instrument selects which upstream chart series a symbol belongs to.
type Instrument string

const (
	InstrumentStock Instrument = "stock"
	InstrumentIndex Instrument = "index"
)

// Statement identifies a financial report kind in the analysis API's terms.
type Statement string

const (
	StatementBalanceSheet    Statement = "balancesheet"
	StatementIncomeStatement Statement = "incomestatement"
	StatementCashFlow        Statement = "cashflow"
)

// ParseStatement maps the tool-facing report_type values onto the provider's
// statement paths. Unrecognized values are rejected before any provider call.
func ParseStatement(reportType string) (Statement, error) {
	switch reportType {
	case "BalanceSheet":
		return StatementBalanceSheet, nil
	case "IncomeStatement":
		return StatementIncomeStatement, nil
	case "CashFlow":
		return StatementCashFlow, nil
	default:
		return "", fmt.Errorf("unknown report_type %q (expected BalanceSheet, IncomeStatement or CashFlow)", reportType)
	}
}

// Bar is one OHLCV row. Values are coerced at the provider boundary: dates are
// rendered as YYYY-MM-DD strings, prices as float64 and volume as int64, so a
// Bar serializes without any provider-internal types.
type Bar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Row is a single record of provider data with only JSON-native values.
type Row map[string]any

// Company is one entry of the full symbol listing.
type Company struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"company_name"`
	Exchange string `json:"exchange"`
	Industry string `json:"industry"`
}
