package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	league "github.com/movieboyz/league-dashboard/components/league"
)

// CommitConfig configures the commit metadata lookup.
type CommitConfig struct {
	// CommitsURL points at a GitHub-style commits listing for the
	// snapshot file, newest first.
	CommitsURL string
	HTTPClient *http.Client
}

// CommitClient reads the committer timestamp of the latest snapshot
// commit. Used only for the footer line, so callers treat failures as
// non-fatal.
type CommitClient struct {
	commitsURL string
	client     *http.Client
}

// NewCommitClient builds the lookup client.
func NewCommitClient(cfg CommitConfig) (*CommitClient, error) {
	if cfg.CommitsURL == "" {
		return nil, fmt.Errorf("fetch: commits url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &CommitClient{commitsURL: cfg.CommitsURL, client: httpClient}, nil
}

var _ league.CommitSource = (*CommitClient)(nil)

type commitEntry struct {
	Commit struct {
		Committer struct {
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

// LatestCommit returns the newest commit's committer timestamp.
func (c *CommitClient) LatestCommit(ctx context.Context) (league.CommitInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.commitsURL, nil)
	if err != nil {
		return league.CommitInfo{}, fmt.Errorf("fetch: build commits request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	resp, err := c.client.Do(req)
	if err != nil {
		return league.CommitInfo{}, fmt.Errorf("fetch: commits request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return league.CommitInfo{}, fmt.Errorf("fetch: commits error %d: %s", resp.StatusCode, buf.String())
	}
	var entries []commitEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return league.CommitInfo{}, fmt.Errorf("fetch: decode commits: %w", err)
	}
	if len(entries) == 0 {
		return league.CommitInfo{}, fmt.Errorf("fetch: no commits returned")
	}
	return league.CommitInfo{CommittedAt: entries[0].Commit.Committer.Date}, nil
}
