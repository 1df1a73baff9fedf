// Package vnstock provides a minimal client for the public market-data APIs
// behind the Vietnamese stock exchanges: the entrade chart API for OHLCV
// series, the TCBS analysis API for company fundamentals and financial
// statements, and the published listing file for the full symbol roster.
package vnstock

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vnmarket/vnstock-mcp/internal/logging"
)

// Daily bars are stamped in exchange-local time.
var exchangeTZ = time.FixedZone("ICT", 7*60*60)

// Config carries the upstream endpoints and HTTP behaviour for a Client.
type Config struct {
	ChartURL    string
	AnalysisURL string
	ListingURL  string
	Timeout     time.Duration
	Logger      logging.Logger
}

// Client issues requests against the upstream market-data APIs. It holds no
// state beyond the HTTP client; every call performs a fresh query.
type Client struct {
	chartURL    string
	analysisURL string
	listingURL  string
	http        *http.Client
	log         logging.Logger
}

// New returns a Client for the configured endpoints. A zero timeout falls
// back to 30 seconds.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		chartURL:    strings.TrimRight(cfg.ChartURL, "/"),
		analysisURL: strings.TrimRight(cfg.AnalysisURL, "/"),
		listingURL:  cfg.ListingURL,
		http:        &http.Client{Timeout: timeout},
		log:         cfg.Logger,
	}
}

// History fetches OHLCV bars for a symbol between start and end at the given
// resolution (1D, 1W or 1M). An empty series yields an empty slice, not an
// error.
func (c *Client) History(ctx context.Context, symbol string, start, end time.Time, resolution string, instrument Instrument) ([]Bar, error) {
	u, err := url.Parse(c.chartURL + "/" + string(instrument))
	if err != nil {
		return nil, fmt.Errorf("invalid chart url: %w", err)
	}
	q := u.Query()
	q.Set("symbol", symbol)
	q.Set("from", strconv.FormatInt(start.Unix(), 10))
	q.Set("to", strconv.FormatInt(end.Unix(), 10))
	q.Set("resolution", resolution)
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", symbol, err)
	}
	return barsFromColumns(gjson.ParseBytes(body)), nil
}

// Overview fetches the company profile record for a symbol. ErrNoData is
// returned when the provider answers with an empty document.
func (c *Client) Overview(ctx context.Context, symbol string) (Row, error) {
	endpoint := c.analysisURL + "/ticker/" + url.PathEscape(symbol) + "/overview"
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch overview for %s: %w", symbol, err)
	}
	row := rowFromJSON(gjson.ParseBytes(body))
	if len(row) == 0 {
		return nil, ErrNoData
	}
	return row, nil
}

// Financials fetches the per-period rows of one financial statement. The
// yearly flag switches between quarterly and yearly granularity.
func (c *Client) Financials(ctx context.Context, symbol string, statement Statement, yearly bool) ([]Row, error) {
	u, err := url.Parse(c.analysisURL + "/finance/" + url.PathEscape(symbol) + "/" + string(statement))
	if err != nil {
		return nil, fmt.Errorf("invalid analysis url: %w", err)
	}
	q := u.Query()
	if yearly {
		q.Set("yearly", "1")
	} else {
		q.Set("yearly", "0")
	}
	q.Set("isAll", "true")
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch %s for %s: %w", statement, symbol, err)
	}
	doc := gjson.ParseBytes(body)
	rows := make([]Row, 0)
	for _, item := range doc.Array() {
		if row := rowFromJSON(item); len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Ping issues a cheap index query to decide provider availability at startup.
func (c *Client) Ping(ctx context.Context) error {
	end := time.Now()
	bars, err := c.History(ctx, "VNINDEX", end.AddDate(0, 0, -7), end, "1D", InstrumentIndex)
	if err != nil {
		return err
	}
	if len(bars) == 0 {
		return fmt.Errorf("provider returned no data for VNINDEX")
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "vnstock-mcp/1.0")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.log.Debug("provider request", "url", rawURL, "bytes", len(body), "elapsed", time.Since(start).String())
	return body, nil
}

// barsFromColumns converts the chart API's columnar arrays (t/o/h/l/c/v) into
// Bar rows. Ragged columns are clamped to the shortest one.
func barsFromColumns(doc gjson.Result) []Bar {
	ts := doc.Get("t").Array()
	opens := doc.Get("o").Array()
	highs := doc.Get("h").Array()
	lows := doc.Get("l").Array()
	closes := doc.Get("c").Array()
	volumes := doc.Get("v").Array()

	n := len(ts)
	for _, col := range [][]gjson.Result{opens, highs, lows, closes} {
		if len(col) < n {
			n = len(col)
		}
	}

	bars := make([]Bar, 0, n)
	for i := 0; i < n; i++ {
		bar := Bar{
			Date:  time.Unix(ts[i].Int(), 0).In(exchangeTZ).Format("2006-01-02"),
			Open:  opens[i].Float(),
			High:  highs[i].Float(),
			Low:   lows[i].Float(),
			Close: closes[i].Float(),
		}
		if i < len(volumes) {
			bar.Volume = volumes[i].Int()
		}
		bars = append(bars, bar)
	}
	return bars
}

// rowFromJSON flattens a JSON object into a Row, dropping nulls. gjson hands
// back JSON-native values only, so the Row serializes as-is.
func rowFromJSON(doc gjson.Result) Row {
	if !doc.IsObject() {
		return nil
	}
	row := Row{}
	doc.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Null {
			row[key.String()] = value.Value()
		}
		return true
	})
	return row
}
