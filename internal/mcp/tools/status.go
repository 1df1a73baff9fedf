package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
)

// StatusHandler reports provider availability and server liveness. It is the
// only tool registered when the provider probe failed at startup.
type StatusHandler struct {
	Available bool
	Version   string
}

func (h *StatusHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := types.Status{
		ProviderAvailable: h.Available,
		ServerStatus:      "running",
		ServerVersion:     h.Version,
		Timestamp:         timeNow().Format(time.RFC3339),
	}
	return mcp.NewToolResultText(string(mustMarshal(status))), nil
}
