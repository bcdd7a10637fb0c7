package league

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"
)

// RenderCache memoizes rendered chart HTML so repeated fetches of the same
// selection are cheap.
type RenderCache interface {
	GetOrRender(key string, render func() (string, error)) (string, error)
}

// ChartCache keeps rendered charts for a bounded time. A zero or negative
// TTL disables caching entirely.
type ChartCache struct {
	ttl time.Duration

	mu      sync.Mutex
	renders map[string]chartRender
}

type chartRender struct {
	html       string
	renderedAt time.Time
}

func (r chartRender) fresh(ttl time.Duration) bool {
	return time.Since(r.renderedAt) < ttl
}

// NewChartCache builds a cache with the provided TTL.
func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{ttl: ttl, renders: make(map[string]chartRender)}
}

// GetOrRender returns the cached HTML for key, rendering and storing it
// when absent or stale. Expired siblings are swept under the same lock.
func (c *ChartCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	if c == nil || c.ttl <= 0 {
		return render()
	}

	c.mu.Lock()
	if r, ok := c.renders[key]; ok && r.fresh(c.ttl) {
		c.mu.Unlock()
		return r.html, nil
	}
	for k, r := range c.renders {
		if !r.fresh(c.ttl) {
			delete(c.renders, k)
		}
	}
	c.mu.Unlock()

	html, err := render()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.renders[key] = chartRender{html: html, renderedAt: time.Now()}
	c.mu.Unlock()
	return html, nil
}

// Purge drops every cached render. Called when a new snapshot is published
// so stale charts never outlive the data they were drawn from.
func (c *ChartCache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.renders = make(map[string]chartRender)
	c.mu.Unlock()
}

// stateHash returns a deterministic hash of the selection/theme state used
// to key rendered charts.
func stateHash(state any) string {
	b, err := json.Marshal(state)
	if err != nil {
		return "invalid"
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
