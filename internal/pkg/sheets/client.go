package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"sensor-ops/internal/pkg/config"
)

// Client fetches named tabs from the spreadsheet's CSV export endpoint
// and memoizes them for a short window to bound request volume within a
// render cycle.
type Client struct {
	spreadsheetID string
	httpClient    *http.Client
	cache         *cache
	defaultTTL    time.Duration
	logger        *zap.Logger

	// baseURL is override-able for tests; empty means the public
	// docs.google.com export endpoint.
	baseURL string
}

// NewClient builds a client from config. The spreadsheet URL has been
// validated at startup.
func NewClient(cfg *config.SheetsConfig, logger *zap.Logger) (*Client, error) {
	id, err := cfg.SpreadsheetID()
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	ttl := time.Duration(cfg.CacheTTL) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Second
	}

	return &Client{
		spreadsheetID: id,
		httpClient:    &http.Client{Timeout: timeout},
		cache:         newCache(),
		defaultTTL:    ttl,
		logger:        logger,
	}, nil
}

// Load returns the named tab, reusing a cached copy younger than ttl.
// ttl <= 0 means the client default; use Refresh to force a fetch.
func (c *Client) Load(ctx context.Context, tab string, ttl time.Duration) (*Table, error) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	if table, ok := c.cache.get(tab); ok {
		return table, nil
	}

	table, err := c.fetch(ctx, tab)
	if err != nil {
		return nil, err
	}

	c.cache.set(tab, table, ttl)
	return table, nil
}

// Refresh fetches the named tab bypassing and repopulating the cache.
func (c *Client) Refresh(ctx context.Context, tab string) (*Table, error) {
	table, err := c.fetch(ctx, tab)
	if err != nil {
		return nil, err
	}
	c.cache.set(tab, table, c.defaultTTL)
	return table, nil
}

// InvalidateAll drops every cached table. Called after any successful
// write so the next read reflects the external state.
func (c *Client) InvalidateAll() {
	c.cache.clear()
}

func (c *Client) fetch(ctx context.Context, tab string) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.exportURL(tab), nil)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: build request: %w", tab, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: fetch: %w", tab, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet %q: endpoint returned %s", tab, resp.Status)
	}

	table, err := parseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", tab, err)
	}

	c.logger.Debug("sheet loaded",
		zap.String("tab", tab),
		zap.Int("rows", len(table.Rows)),
	)

	return table, nil
}

// exportURL builds the gviz CSV export URL. The trailing timestamp
// defeats the upstream HTTP cache, as the old client did with &t=.
func (c *Client) exportURL(tab string) string {
	base := c.baseURL
	if base == "" {
		base = "https://docs.google.com"
	}
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s&t=%d",
		base, c.spreadsheetID, url.QueryEscape(tab), time.Now().Unix())
}

func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty response, no header row")
	}

	return NewTable(records), nil
}
