package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

type IndexService interface {
	IndexWindow(ctx context.Context, index string) (types.IndexWindow, error)
}

type GetMarketOverviewHandler struct {
	Service IndexService
}

func (h *GetMarketOverviewHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index := strings.ToUpper(stringArg(req.GetArguments(), "index"))
	if index == "" {
		index = "VNINDEX"
	}

	window, err := h.Service.IndexWindow(ctx, index)
	if errors.Is(err, vnstock.ErrNoData) || (err == nil && len(window.Bars) == 0) {
		return mcp.NewToolResultText(fmt.Sprintf("No data found for index: %s", index)), nil
	}
	if err != nil {
		return nil, err
	}

	bars := window.Bars
	latest := bars[len(bars)-1]
	// Change is measured against the previous close when the window has one,
	// otherwise against the latest bar's open.
	previous := latest.Open
	if len(bars) > 1 {
		previous = bars[len(bars)-2].Close
	}

	result := types.MarketOverview{
		Index:         index,
		Date:          latest.Date,
		Value:         latest.Close,
		Change:        latest.Close - previous,
		ChangePercent: changePercent(previous, latest.Close),
		Volume:        latest.Volume,
		RecentData:    bars,
		ProxySymbol:   window.ProxySymbol,
	}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
