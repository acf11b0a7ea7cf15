package scorer

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// responseCache keeps scored (model, block, source) triples for the lifetime
// of the process so a repeated render pass never re-bills the API. Failed
// calls are not cached; those stay retryable.
type responseCache struct {
	mu     sync.RWMutex
	items  map[string]RawScoreMap
	hits   int
	misses int
}

func newResponseCache() *responseCache {
	return &responseCache{
		items: make(map[string]RawScoreMap),
	}
}

func cacheKey(model, block, source string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(block))
	h.Write([]byte{0})
	h.Write([]byte(source))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *responseCache) get(key string) (RawScoreMap, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists {
		c.misses += 1
		return nil, false
	}

	c.hits += 1
	return item, true
}

func (c *responseCache) put(key string, scores RawScoreMap) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = scores
}

func (c *responseCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *responseCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	}
	return 0.0
}
