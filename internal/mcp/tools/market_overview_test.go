package tools

import (
	"context"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/vnmarket/vnstock-mcp/internal/mcp/tools/types"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

type fakeIndexService struct {
	window types.IndexWindow
	err    error
	index  string
}

func (f *fakeIndexService) IndexWindow(ctx context.Context, index string) (types.IndexWindow, error) {
	f.index = index
	return f.window, f.err
}

func TestGetMarketOverviewChangeVsPreviousClose(t *testing.T) {
	svc := &fakeIndexService{window: types.IndexWindow{Bars: []vnstock.Bar{
		{Date: "2024-05-09", Open: 1200, Close: 1210, Volume: 100},
		{Date: "2024-05-10", Open: 1212, Close: 1222, Volume: 120},
	}}}
	h := &GetMarketOverviewHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest("get_market_overview", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := gjson.Parse(resultText(t, res))
	if svc.index != "VNINDEX" {
		t.Fatalf("expected default index VNINDEX, got %q", svc.index)
	}
	if doc.Get("value").Float() != 1222 {
		t.Fatalf("unexpected value %v", doc.Get("value").Float())
	}
	if doc.Get("change").Float() != 12 {
		t.Fatalf("expected change vs previous close 12, got %v", doc.Get("change").Float())
	}
	if len(doc.Get("recent_data").Array()) != 2 {
		t.Fatalf("expected trailing window in response")
	}
}

func TestGetMarketOverviewZeroPreviousClose(t *testing.T) {
	svc := &fakeIndexService{window: types.IndexWindow{Bars: []vnstock.Bar{
		{Date: "2024-05-09", Close: 0},
		{Date: "2024-05-10", Open: 0, Close: 10},
	}}}
	h := &GetMarketOverviewHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest("get_market_overview", map[string]any{"index": "vn30"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := gjson.Parse(resultText(t, res))
	if doc.Get("change_percent").Float() != 0 {
		t.Fatalf("zero previous close must yield change_percent 0, got %v", doc.Get("change_percent").Float())
	}
	if doc.Get("index").String() != "VN30" {
		t.Fatalf("expected normalized index echo, got %q", doc.Get("index").String())
	}
}

func TestGetMarketOverviewProxyReported(t *testing.T) {
	svc := &fakeIndexService{window: types.IndexWindow{
		Bars:        []vnstock.Bar{{Date: "2024-05-10", Open: 20, Close: 21}},
		ProxySymbol: "E1VFVN30",
	}}
	h := &GetMarketOverviewHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest("get_market_overview", map[string]any{"index": "UPCOM"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gjson.Parse(resultText(t, res)).Get("proxy_symbol").String() != "E1VFVN30" {
		t.Fatalf("expected proxy symbol in response")
	}
}

func TestGetMarketOverviewNoData(t *testing.T) {
	svc := &fakeIndexService{err: vnstock.ErrNoData}
	h := &GetMarketOverviewHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest("get_market_overview", map[string]any{"index": "HNX30"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resultText(t, res) != "No data found for index: HNX30" {
		t.Fatalf("unexpected text: %q", resultText(t, res))
	}
}
