package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

type fakeCompanyService struct {
	overview    vnstock.Row
	overviewErr error
	snapshot    *types.PriceSnapshot
	snapshotErr error
}

func (f *fakeCompanyService) Overview(ctx context.Context, symbol string) (vnstock.Row, error) {
	return f.overview, f.overviewErr
}

func (f *fakeCompanyService) RecentSnapshot(ctx context.Context, symbol string) (*types.PriceSnapshot, error) {
	return f.snapshot, f.snapshotErr
}

func TestGetCompanyOverviewEnriched(t *testing.T) {
	svc := &fakeCompanyService{
		overview: vnstock.Row{"exchange": "HOSE", "industry": "Banks"},
		snapshot: &types.PriceSnapshot{Date: "2024-05-10", Close: 91.2, Volume: 500},
	}
	h := &GetCompanyOverviewHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest("get_company_overview", map[string]any{"symbol": "vcb"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := gjson.Parse(resultText(t, res))
	if doc.Get("symbol").String() != "VCB" {
		t.Fatalf("expected uppercase symbol, got %q", doc.Get("symbol").String())
	}
	if doc.Get("recent_price.close").Float() != 91.2 {
		t.Fatalf("expected recent_price enrichment, got %s", doc.Raw)
	}
}

func TestGetCompanyOverviewEnrichmentFailureOmitted(t *testing.T) {
	svc := &fakeCompanyService{
		overview:    vnstock.Row{"exchange": "HOSE"},
		snapshotErr: errors.New("quote endpoint down"),
	}
	h := &GetCompanyOverviewHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest("get_company_overview", map[string]any{"symbol": "VCB"}))
	if err != nil {
		t.Fatalf("enrichment failure must not surface: %v", err)
	}
	if res.IsError {
		t.Fatalf("enrichment failure must not produce an error result")
	}
	if gjson.Parse(resultText(t, res)).Get("recent_price").Exists() {
		t.Fatalf("failed enrichment must be omitted")
	}
}

func TestGetCompanyOverviewNoData(t *testing.T) {
	svc := &fakeCompanyService{overviewErr: vnstock.ErrNoData}
	h := &GetCompanyOverviewHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest("get_company_overview", map[string]any{"symbol": "ZZZ"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resultText(t, res) != "No company overview found for symbol: ZZZ" {
		t.Fatalf("unexpected text: %q", resultText(t, res))
	}
}

func TestGetCompanyOverviewMissingSymbol(t *testing.T) {
	h := &GetCompanyOverviewHandler{Service: &fakeCompanyService{}}
	res, err := h.ToolAdapter(context.Background(), callRequest("get_company_overview", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected argument error")
	}
}
