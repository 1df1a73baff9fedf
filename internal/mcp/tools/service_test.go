package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/vnmarket/vnstock-mcp/internal/logging"
	"github.com/vnmarket/vnstock-mcp/internal/vnstock"
)

func newTestService(t *testing.T, handler http.Handler) *MarketService {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	client := vnstock.New(vnstock.Config{
		ChartURL:    ts.URL + "/chart",
		AnalysisURL: ts.URL + "/analysis",
		ListingURL:  ts.URL + "/listing.csv",
		Timeout:     5 * time.Second,
		Logger:      logging.New(logr.Discard()),
	})
	return NewMarketService(client, logging.New(logr.Discard()))
}

func TestLatestQuoteZeroOpenGuard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chart/stock", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"t":[1704067200],"o":[0],"h":[5],"l":[0],"c":[4.2],"v":[100]}`))
	})
	svc := newTestService(t, mux)

	quote, err := svc.LatestQuote(context.Background(), "NEW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.ChangePercent != 0 {
		t.Fatalf("zero open must yield change_percent 0, got %v", quote.ChangePercent)
	}
	if quote.Change != 4.2 {
		t.Fatalf("unexpected change %v", quote.Change)
	}
}

func TestLatestQuoteNoData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chart/stock", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"t":[],"o":[],"h":[],"l":[],"c":[],"v":[]}`))
	})
	svc := newTestService(t, mux)

	if _, err := svc.LatestQuote(context.Background(), "ZZZ"); err != vnstock.ErrNoData {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestIndexWindowDirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chart/index", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"t":[1704067200],"o":[1200],"h":[1215],"l":[1195],"c":[1210],"v":[500]}`))
	})
	svc := newTestService(t, mux)

	window, err := svc.IndexWindow(context.Background(), "VNINDEX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window.ProxySymbol != "" {
		t.Fatalf("direct index query must not report a proxy")
	}
	if len(window.Bars) != 1 || window.Bars[0].Close != 1210 {
		t.Fatalf("unexpected window: %+v", window)
	}
}

func TestIndexWindowFallsBackToProxy(t *testing.T) {
	var proxySymbol string
	mux := http.NewServeMux()
	mux.HandleFunc("/chart/index", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"t":[],"o":[],"h":[],"l":[],"c":[],"v":[]}`))
	})
	mux.HandleFunc("/chart/stock", func(w http.ResponseWriter, r *http.Request) {
		proxySymbol = r.URL.Query().Get("symbol")
		w.Write([]byte(`{"t":[1704067200],"o":[20],"h":[21],"l":[19.5],"c":[20.5],"v":[900]}`))
	})
	svc := newTestService(t, mux)

	window, err := svc.IndexWindow(context.Background(), "UPCOM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window.ProxySymbol != indexProxySymbol {
		t.Fatalf("expected proxy symbol %q, got %q", indexProxySymbol, window.ProxySymbol)
	}
	if proxySymbol != indexProxySymbol {
		t.Fatalf("proxy query used symbol %q", proxySymbol)
	}
}

func TestRecentSnapshotFailureReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chart/stock", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	svc := newTestService(t, mux)

	snapshot, err := svc.RecentSnapshot(context.Background(), "VCB")
	if err == nil {
		t.Fatalf("expected error")
	}
	if snapshot != nil {
		t.Fatalf("expected nil snapshot on failure")
	}
}
