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

type CompanyService interface {
	Overview(ctx context.Context, symbol string) (vnstock.Row, error)
	RecentSnapshot(ctx context.Context, symbol string) (*types.PriceSnapshot, error)
}

type GetCompanyOverviewHandler struct {
	Service CompanyService
}

func (h *GetCompanyOverviewHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := strings.ToUpper(stringArg(req.GetArguments(), "symbol"))
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}

	overview, err := h.Service.Overview(ctx, symbol)
	if errors.Is(err, vnstock.ErrNoData) {
		return mcp.NewToolResultText(fmt.Sprintf("No company overview found for symbol: %s", symbol)), nil
	}
	if err != nil {
		return nil, err
	}

	result := vnstock.Row{}
	for k, v := range overview {
		result[k] = v
	}
	result["symbol"] = symbol

	// Best effort: the overview is still useful without a price snapshot, so
	// enrichment failures are logged by the service and silently omitted here.
	if snapshot, err := h.Service.RecentSnapshot(ctx, symbol); err == nil && snapshot != nil {
		result["recent_price"] = snapshot
	}

	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
