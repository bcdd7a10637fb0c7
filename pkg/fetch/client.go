// Package fetch loads league snapshots and commit metadata from
// remote endpoints or local files.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	league "github.com/movieboyz/league-dashboard/components/league"
)

// Config configures the HTTP snapshot client.
type Config struct {
	SnapshotURL string
	HTTPClient  *http.Client
	// Clock feeds the cache-busting query parameter. Defaults to time.Now.
	Clock func() time.Time
}

// Client fetches published snapshot files over HTTP.
type Client struct {
	snapshotURL string
	client      *http.Client
	clock       func() time.Time
}

// NewClient builds a client capable of hitting the published snapshot.
func NewClient(cfg Config) (*Client, error) {
	if cfg.SnapshotURL == "" {
		return nil, fmt.Errorf("fetch: snapshot url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Client{
		snapshotURL: cfg.SnapshotURL,
		client:      httpClient,
		clock:       clock,
	}, nil
}

var _ league.SnapshotSource = (*Client)(nil)

// FetchSnapshot retrieves and decodes the snapshot. A cache-busting
// query parameter defeats CDN caching of the published file.
func (c *Client) FetchSnapshot(ctx context.Context) (*league.Snapshot, error) {
	endpoint, err := url.Parse(c.snapshotURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: parse snapshot url: %w", err)
	}
	query := endpoint.Query()
	query.Set("cachebust", strconv.FormatInt(c.clock().UnixMilli(), 10))
	endpoint.RawQuery = query.Encode()

	var snap league.Snapshot
	if err := c.do(ctx, endpoint.String(), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) do(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("fetch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("fetch: remote error %d: %s", resp.StatusCode, buf.String())
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("fetch: decode response: %w", err)
	}
	return nil
}
