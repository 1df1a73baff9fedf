package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

const defaultListingCap = 100

type ListingService interface {
	Companies(ctx context.Context) ([]vnstock.Company, error)
}

type ListCompaniesHandler struct {
	Service ListingService
	// Cap limits how many rows are returned; total counts are still reported.
	Cap int
}

func (h *ListCompaniesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	exchange := strings.ToUpper(stringArg(args, "exchange"))
	if exchange == "" {
		exchange = "ALL"
	}
	sector := stringArg(args, "sector")

	companies, err := h.Service.Companies(ctx)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return mcp.NewToolResultText("No company listings found"), nil
	}

	filtered := make([]vnstock.Company, 0, len(companies))
	sectorLower := strings.ToLower(sector)
	for _, company := range companies {
		if exchange != "ALL" && company.Exchange != exchange {
			continue
		}
		if sector != "" && !strings.Contains(strings.ToLower(company.Industry), sectorLower) {
			continue
		}
		filtered = append(filtered, company)
	}

	limit := h.Cap
	if limit <= 0 {
		limit = defaultListingCap
	}
	shown := filtered
	if len(shown) > limit {
		shown = shown[:limit]
	}

	result := types.ListCompaniesResult{
		Exchange:       exchange,
		Sector:         sector,
		TotalCompanies: len(filtered),
		Displayed:      len(shown),
		Companies:      shown,
	}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
