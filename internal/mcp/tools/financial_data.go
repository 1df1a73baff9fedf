package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

type FinancialService interface {
	Financials(ctx context.Context, symbol string, statement vnstock.Statement, yearly bool) ([]vnstock.Row, error)
}

type GetFinancialDataHandler struct {
	Service FinancialService
}

func (h *GetFinancialDataHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	symbol := strings.ToUpper(stringArg(args, "symbol"))
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}

	reportType := stringArg(args, "report_type")
	if reportType == "" {
		reportType = "IncomeStatement"
	}
	statement, err := vnstock.ParseStatement(reportType)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	frequency := stringArg(args, "frequency")
	if frequency == "" {
		frequency = "Quarterly"
	}
	var yearly bool
	switch frequency {
	case "Quarterly":
	case "Yearly":
		yearly = true
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown frequency %q (expected Quarterly or Yearly)", frequency)), nil
	}

	rows, err := h.Service.Financials(ctx, symbol, statement, yearly)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No financial data found for %s", symbol)), nil
	}

	result := types.FinancialResult{
		Symbol:     symbol,
		ReportType: reportType,
		Frequency:  frequency,
		Periods:    len(rows),
		Data:       rows,
	}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
