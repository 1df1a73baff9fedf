package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/vnmarket/vnstock-mcp/internal/logging"
	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

// When an index cannot be queried directly, the window is served from this
// exchange-traded fund tracking the broad market instead.
const indexProxySymbol = "E1VFVN30"

// MarketService adapts the vnstock provider client to the per-tool service
// interfaces. It is stateless; every call is a fresh provider query.
type MarketService struct {
	client *vnstock.Client
	log    logging.Logger
}

func NewMarketService(client *vnstock.Client, log logging.Logger) *MarketService {
	return &MarketService{client: client, log: log.WithName("market")}
}

// LatestQuote returns the most recent daily bar for a symbol with derived
// change figures. A zero opening price yields a change_percent of 0.
func (s *MarketService) LatestQuote(ctx context.Context, symbol string) (types.Quote, error) {
	end := timeNow()
	bars, err := s.client.History(ctx, symbol, end.AddDate(0, 0, -7), end, "1D", vnstock.InstrumentStock)
	if err != nil {
		return types.Quote{}, fmt.Errorf("fetch latest quote: %w", err)
	}
	if len(bars) == 0 {
		return types.Quote{}, vnstock.ErrNoData
	}
	latest := bars[len(bars)-1]
	return types.Quote{
		Symbol:        symbol,
		Date:          latest.Date,
		Open:          latest.Open,
		High:          latest.High,
		Low:           latest.Low,
		Close:         latest.Close,
		Volume:        latest.Volume,
		Change:        latest.Close - latest.Open,
		ChangePercent: changePercent(latest.Open, latest.Close),
	}, nil
}

// History returns the OHLCV series for a symbol over [start, end].
func (s *MarketService) History(ctx context.Context, symbol string, start, end time.Time, resolution string) ([]vnstock.Bar, error) {
	return s.client.History(ctx, symbol, start, end, resolution, vnstock.InstrumentStock)
}

// Overview returns the company profile record for a symbol.
func (s *MarketService) Overview(ctx context.Context, symbol string) (vnstock.Row, error) {
	return s.client.Overview(ctx, symbol)
}

// RecentSnapshot is the best-effort price enrichment for company overviews.
// Failures are logged and reported to the caller, which omits the snapshot.
func (s *MarketService) RecentSnapshot(ctx context.Context, symbol string) (*types.PriceSnapshot, error) {
	quote, err := s.LatestQuote(ctx, symbol)
	if err != nil {
		s.log.Debug("recent price enrichment unavailable", "symbol", symbol, "reason", err.Error())
		return nil, err
	}
	return &types.PriceSnapshot{Date: quote.Date, Close: quote.Close, Volume: quote.Volume}, nil
}

// Financials returns the per-period rows of one financial statement.
func (s *MarketService) Financials(ctx context.Context, symbol string, statement vnstock.Statement, yearly bool) ([]vnstock.Row, error) {
	return s.client.Financials(ctx, symbol, statement, yearly)
}

// Companies returns the full symbol listing.
func (s *MarketService) Companies(ctx context.Context) ([]vnstock.Company, error) {
	return s.client.Listing(ctx)
}

// IndexWindow returns a trailing week of bars for a market index, falling
// back to a fixed proxy instrument when the index cannot be queried directly.
func (s *MarketService) IndexWindow(ctx context.Context, index string) (types.IndexWindow, error) {
	end := timeNow()
	start := end.AddDate(0, 0, -7)

	bars, err := s.client.History(ctx, index, start, end, "1D", vnstock.InstrumentIndex)
	if err == nil && len(bars) > 0 {
		return types.IndexWindow{Bars: bars}, nil
	}
	if err != nil {
		s.log.Error(err, "index query failed, trying proxy instrument", "index", index, "proxy", indexProxySymbol)
	} else {
		s.log.Debug("index query returned no rows, trying proxy instrument", "index", index, "proxy", indexProxySymbol)
	}

	proxyBars, proxyErr := s.client.History(ctx, indexProxySymbol, start, end, "1D", vnstock.InstrumentStock)
	if proxyErr != nil {
		return types.IndexWindow{}, fmt.Errorf("fetch index window for %s: %w", index, proxyErr)
	}
	if len(proxyBars) == 0 {
		return types.IndexWindow{}, vnstock.ErrNoData
	}
	return types.IndexWindow{Bars: proxyBars, ProxySymbol: indexProxySymbol}, nil
}

func changePercent(base, current float64) float64 {
	if base == 0 {
		return 0
	}
	return (current - base) / base * 100
}
