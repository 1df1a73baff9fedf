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

type QuoteService interface {
	LatestQuote(ctx context.Context, symbol string) (types.Quote, error)
}

type GetStockPriceHandler struct {
	Service QuoteService
}

func (h *GetStockPriceHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := strings.ToUpper(stringArg(req.GetArguments(), "symbol"))
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}

	quote, err := h.Service.LatestQuote(ctx, symbol)
	if errors.Is(err, vnstock.ErrNoData) {
		return mcp.NewToolResultText(fmt.Sprintf("No data found for symbol: %s", symbol)), nil
	}
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(quote))), nil
}
