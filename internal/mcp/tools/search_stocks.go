package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

type SearchStocksHandler struct {
	Service ListingService
}

func (h *SearchStocksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := strings.ToLower(stringArg(args, "query"))
	if query == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	limit := intArg(args, "limit", 10)

	companies, err := h.Service.Companies(ctx)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return mcp.NewToolResultText("No companies found in listing"), nil
	}

	seen := map[string]bool{}
	matches := make([]vnstock.Company, 0)
	for _, company := range companies {
		if seen[company.Symbol] {
			continue
		}
		if !strings.Contains(strings.ToLower(company.Symbol), query) &&
			!strings.Contains(strings.ToLower(company.Name), query) {
			continue
		}
		seen[company.Symbol] = true
		matches = append(matches, company)
	}

	shown := matches
	if len(shown) > limit {
		shown = shown[:limit]
	}

	result := types.SearchResult{
		Query:        query,
		TotalMatches: len(matches),
		Limit:        limit,
		Matches:      shown,
	}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
