package analysis

import (
	"sync"
	"time"
)

// SignalCache holds the most recent analysis result for a bounded time so
// repeated requests inside the window skip recomputation. It is owned by
// whoever runs analysis cycles and injected where needed; expiry is purely
// time-based and nothing survives a restart.
type SignalCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	result   *AnalysisResult
	storedAt time.Time
}

// DefaultCacheTTL is how long an analysis result stays fresh.
const DefaultCacheTTL = 60 * time.Second

func NewSignalCache(ttl time.Duration) *SignalCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SignalCache{ttl: ttl}
}

// Get returns the cached result while it is fresh.
func (c *SignalCache) Get() (*AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.result == nil || time.Since(c.storedAt) >= c.ttl {
		return nil, false
	}
	return c.result, true
}

// Put stores a fresh result.
func (c *SignalCache) Put(result *AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result = result
	c.storedAt = time.Now()
}
