package types

import "github.com/vnmarket/vnstock-mcp/internal/vnstock"

// IndexWindow is a short trailing window of index bars. ProxySymbol is set
// when the index could not be queried directly and a proxy instrument served
// the data instead.
type IndexWindow struct {
	Bars        []vnstock.Bar
	ProxySymbol string
}

// MarketOverview summarizes the most recent state of a market index.
type MarketOverview struct {
	Index         string        `json:"index"`
	Date          string        `json:"date"`
	Value         float64       `json:"value"`
	Change        float64       `json:"change"`
	ChangePercent float64       `json:"change_percent"`
	Volume        int64         `json:"volume"`
	RecentData    []vnstock.Bar `json:"recent_data"`
	ProxySymbol   string        `json:"proxy_symbol,omitempty"`
}

// ForeignTradingNotice is the fixed placeholder returned by the
// foreign-trading tool until the upstream data source is wired in.
type ForeignTradingNotice struct {
	Message   string `json:"message"`
	Symbol    string `json:"symbol,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Note      string `json:"note"`
}
