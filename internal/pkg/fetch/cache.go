package fetch

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("hazard-watch/fetch")

// Loader fetches the payload for a cache key. It must honour ctx.
type Loader func(ctx context.Context) (any, error)

type entry struct {
	ts      time.Time
	payload any
}

// Cache memoizes loader results per key with a time to live. Stale entries
// are not evicted proactively, staleness is detected at lookup. A maximum
// key count bounds memory, evicting in insertion order.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	order   []string
	maxKeys int

	hits   metric.Int64Counter
	misses metric.Int64Counter
}

func NewCache(maxKeys int) *Cache {
	hits, _ := meter.Int64Counter("fetch.cache.hits")
	misses, _ := meter.Int64Counter("fetch.cache.misses")

	return &Cache{
		entries: make(map[string]entry),
		maxKeys: maxKeys,
		hits:    hits,
		misses:  misses,
	}
}

// Get returns the cached payload for key if it is younger than ttl,
// otherwise it invokes loader under timeout and stores the result. Failed
// loads store nothing. A load cancelled through ctx returns ErrSuperseded,
// a load that exceeds timeout returns ErrTimeout.
func (c *Cache) Get(ctx context.Context, key string, loader Loader, ttl, timeout time.Duration) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if time.Since(e.ts) <= ttl {
			c.mu.Unlock()
			c.hits.Add(ctx, 1)
			return e.payload, nil
		}
		c.remove(key)
	}
	c.mu.Unlock()

	c.misses.Add(ctx, 1)

	loadCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := loader(loadCtx)
	if err != nil {
		if errors.Is(loadCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrTimeout
		}
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, ErrSuperseded
		}
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = entry{ts: time.Now(), payload: payload}

	for c.maxKeys > 0 && len(c.entries) > c.maxKeys {
		c.remove(c.order[0])
	}

	return payload, nil
}

// Reset discards every entry. Used when the offline mode toggles.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	c.order = nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
