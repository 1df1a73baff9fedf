package mcp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vnmarket/vnstock-mcp/internal/logging"
)

const (
	ServerName    = "vnstock-mcp-server"
	ServerVersion = "1.0.0"

	versionResourceURI = "vnstock://server/version"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

// New assembles the MCP server from the configured tool adapters. Only
// adapters with a catalog definition are registered, so the advertised
// catalog is a pure function of the configuration. Every adapter error is
// converted to a text result at this boundary; no invocation can crash the
// process.
func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	)

	log := cfg.Logger
	if log.Logr().GetSink() == nil {
		log = logging.New(logging.DefaultLogger().WithName("mcp"))
	}

	definitions := toolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := definitions[name]
		if !ok {
			log.Info("skipping adapter without catalog definition", "tool", name)
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := adapter.ToolAdapter(ctx, req)
			if err != nil {
				log.Error(err, "tool invocation failed", "tool", name)
				return mcp.NewToolResultError(fmt.Sprintf("Error executing %s: %v", name, err)), nil
			}
			return result, nil
		})
	}

	mcpServer.AddResource(
		mcp.NewResource(versionResourceURI, "Server version",
			mcp.WithResourceDescription("The vnstock-mcp server version"),
			mcp.WithMIMEType("text/plain"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     ServerVersion,
				},
			}, nil
		},
	)

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// toolDefinitions declares the full catalog: name, description and argument
// schema for every tool this server can expose.
func toolDefinitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		"get_stock_price": mcp.NewTool("get_stock_price",
			mcp.WithDescription("Get the latest price and daily change for a Vietnamese stock symbol."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock symbol (e.g., VIC, VCB, MSN)"),
			),
		),
		"get_historical_data": mcp.NewTool("get_historical_data",
			mcp.WithDescription("Get historical OHLCV data for a stock symbol for analysis and charting."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock symbol (e.g., VIC, VCB, MSN)"),
			),
			mcp.WithString("start_date",
				mcp.Description("Start date in YYYY-MM-DD format (default: 30 days ago)"),
			),
			mcp.WithString("end_date",
				mcp.Description("End date in YYYY-MM-DD format (default: today)"),
			),
			mcp.WithString("resolution",
				mcp.Description("Data resolution: 1D (daily), 1W (weekly), 1M (monthly)"),
				mcp.Enum("1D", "1W", "1M"),
				mcp.DefaultString("1D"),
			),
		),
		"get_company_overview": mcp.NewTool("get_company_overview",
			mcp.WithDescription("Get company profile and fundamental data for a stock symbol."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock symbol (e.g., VIC, VCB, MSN)"),
			),
		),
		"get_financial_data": mcp.NewTool("get_financial_data",
			mcp.WithDescription("Get financial statements for fundamental analysis."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock symbol (e.g., VIC, VCB, MSN)"),
			),
			mcp.WithString("report_type",
				mcp.Description("Financial report type"),
				mcp.Enum("BalanceSheet", "IncomeStatement", "CashFlow"),
				mcp.DefaultString("IncomeStatement"),
			),
			mcp.WithString("frequency",
				mcp.Description("Report frequency"),
				mcp.Enum("Quarterly", "Yearly"),
				mcp.DefaultString("Quarterly"),
			),
		),
		"list_companies": mcp.NewTool("list_companies",
			mcp.WithDescription("List companies on the Vietnamese stock exchanges, optionally filtered by exchange or sector."),
			mcp.WithString("exchange",
				mcp.Description("Stock exchange"),
				mcp.Enum("HOSE", "HNX", "UPCOM", "ALL"),
				mcp.DefaultString("ALL"),
			),
			mcp.WithString("sector",
				mcp.Description("Industry sector filter (optional, substring match)"),
			),
		),
		"get_market_overview": mcp.NewTool("get_market_overview",
			mcp.WithDescription("Get a recent window of a Vietnamese market index with latest value and change."),
			mcp.WithString("index",
				mcp.Description("Market index"),
				mcp.Enum("VNINDEX", "HNX30", "UPCOM", "VN30"),
				mcp.DefaultString("VNINDEX"),
			),
		),
		"get_foreign_trading": mcp.NewTool("get_foreign_trading",
			mcp.WithDescription("Get foreign investor trading data for market sentiment analysis."),
			mcp.WithString("symbol",
				mcp.Description("Stock symbol or market index (optional)"),
			),
			mcp.WithString("start_date",
				mcp.Description("Start date in YYYY-MM-DD format (default: 30 days ago)"),
			),
			mcp.WithString("end_date",
				mcp.Description("End date in YYYY-MM-DD format (default: today)"),
			),
		),
		"search_stocks": mcp.NewTool("search_stocks",
			mcp.WithDescription("Search for stocks by company name or symbol."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query (company name or symbol)"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results to return"),
				mcp.DefaultNumber(10),
			),
		),
		"vnstock_status": mcp.NewTool("vnstock_status",
			mcp.WithDescription("Check market-data provider availability and server status."),
		),
	}
}
