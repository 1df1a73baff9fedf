package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
)

// GetForeignTradingHandler always answers with a fixed notice; no upstream
// source for foreign-investor flows is wired in yet, and the provider is
// never called.
type GetForeignTradingHandler struct{}

func (h *GetForeignTradingHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	startDate := stringArg(args, "start_date")
	if startDate == "" {
		startDate = daysAgo(30)
	}
	endDate := stringArg(args, "end_date")
	if endDate == "" {
		endDate = today()
	}

	result := types.ForeignTradingNotice{
		Message:   "Foreign investor trading data is not implemented",
		Symbol:    strings.ToUpper(stringArg(args, "symbol")),
		StartDate: startDate,
		EndDate:   endDate,
		Note:      "Use get_historical_data or get_market_overview for price-based analysis instead",
	}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
