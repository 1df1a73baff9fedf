package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/vnmarket/vnstock-mcp/internal/config"
	"github.com/vnmarket/vnstock-mcp/internal/logging"
	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Logger       logging.Logger
}

// DefaultConfig builds the production configuration: a provider client from
// the resolved settings, a single availability probe, and the matching
// adapter set. A failed probe degrades the catalog to the status tool alone;
// it never aborts startup.
func DefaultConfig() Config {
	baseLogger := logging.DefaultLogger()
	log := logging.New(baseLogger.WithName("vnstock-mcp"))

	client := vnstock.New(vnstock.Config{
		ChartURL:    config.ChartURL(),
		AnalysisURL: config.AnalysisURL(),
		ListingURL:  config.ListingURL(),
		Timeout:     config.RequestTimeout(),
		Logger:      logging.New(baseLogger.WithName("provider")),
	})

	ctx, cancel := context.WithTimeout(context.Background(), config.RequestTimeout())
	defer cancel()
	available := true
	if err := client.Ping(ctx); err != nil {
		log.Error(err, "provider unavailable, serving reduced catalog")
		available = false
	}

	service := tools.NewMarketService(client, logging.New(baseLogger.WithName("tools")))

	return Config{
		ToolAdapters: toolAdapters(service, available, config.ResultCap()),
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		Logger: log,
	}
}

// toolAdapters returns the adapter set for the given availability. The status
// tool is always present; everything else requires a reachable provider.
func toolAdapters(service *tools.MarketService, available bool, listingCap int) map[string]ToolAdapter {
	adapters := map[string]ToolAdapter{
		"vnstock_status": &tools.StatusHandler{Available: available, Version: ServerVersion},
	}
	if !available {
		return adapters
	}

	adapters["get_stock_price"] = &tools.GetStockPriceHandler{Service: service}
	adapters["get_historical_data"] = &tools.GetHistoricalDataHandler{Service: service}
	adapters["get_company_overview"] = &tools.GetCompanyOverviewHandler{Service: service}
	adapters["get_financial_data"] = &tools.GetFinancialDataHandler{Service: service}
	adapters["list_companies"] = &tools.ListCompaniesHandler{Service: service, Cap: listingCap}
	adapters["get_market_overview"] = &tools.GetMarketOverviewHandler{Service: service}
	adapters["get_foreign_trading"] = &tools.GetForeignTradingHandler{}
	adapters["search_stocks"] = &tools.SearchStocksHandler{Service: service}
	return adapters
}
