package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

type HistoryService interface {
	History(ctx context.Context, symbol string, start, end time.Time, resolution string) ([]vnstock.Bar, error)
}

type GetHistoricalDataHandler struct {
	Service HistoryService
}

func (h *GetHistoricalDataHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	symbol := strings.ToUpper(stringArg(args, "symbol"))
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}

	startDate := stringArg(args, "start_date")
	if startDate == "" {
		startDate = daysAgo(30)
	}
	endDate := stringArg(args, "end_date")
	if endDate == "" {
		endDate = today()
	}
	resolution := stringArg(args, "resolution")
	if resolution == "" {
		resolution = "1D"
	}

	start, err := parseDate(startDate)
	if err != nil {
		return mcp.NewToolResultError("start_date must be in YYYY-MM-DD format"), nil
	}
	end, err := parseDate(endDate)
	if err != nil {
		return mcp.NewToolResultError("end_date must be in YYYY-MM-DD format"), nil
	}

	bars, err := h.Service.History(ctx, symbol, start, end, resolution)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No historical data found for %s from %s to %s", symbol, startDate, endDate)), nil
	}

	result := types.HistoryResult{
		Symbol:     symbol,
		StartDate:  startDate,
		EndDate:    endDate,
		Resolution: resolution,
		DataPoints: len(bars),
		Data:       bars,
	}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
