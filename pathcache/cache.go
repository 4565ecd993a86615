package pathcache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"

	"github.com/arveldin/wayfarer/geom"
)

const (
	// defaultMaxEntries bounds the underlying LRU by entry count.
	defaultMaxEntries = 2048
	// MovementTolerance is the Chebyshev distance beyond which a cached
	// entry is considered stale relative to the anchor it was inserted at.
	MovementTolerance = 10
	// DefaultMaxAge is the TTL after which an entry is evicted regardless
	// of anchor distance.
	DefaultMaxAge = 5 * time.Minute
)

// CachedPathCost is one cache entry.
type CachedPathCost struct {
	Cost       int64
	TileCount  int
	InsertedAt time.Time
	Anchor     geom.Tile
}

// Cache is a single-writer, read-mostly bounded path-cost cache; the
// coordinator is the sole writer.
type Cache struct {
	mu     sync.Mutex
	lru    *lru.Cache
	maxAge time.Duration
	log    *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries overrides the LRU's entry-count bound.
func WithMaxEntries(n int) Option {
	return func(c *Cache) { c.lru.MaxEntries = n }
}

// WithMaxAge overrides DefaultMaxAge.
func WithMaxAge(d time.Duration) Option {
	return func(c *Cache) { c.maxAge = d }
}

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// New constructs an empty Cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		lru:    lru.New(defaultMaxEntries),
		maxAge: DefaultMaxAge,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Insert records cost/tileCount for key (typically a "from|to" pair
// encoded by the caller), anchored at the player position current at
// insertion time.
func (c *Cache) Insert(key string, cost int64, tileCount int, anchor geom.Tile, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, CachedPathCost{Cost: cost, TileCount: tileCount, InsertedAt: now, Anchor: anchor})
}

// Get returns the cached cost for key if it is still fresh: the caller's
// current anchor must be within MovementTolerance of the anchor recorded
// at insertion, and the entry must not have exceeded maxAge as of now. A
// stale or missing entry evicts the key and returns ok=false.
func (c *Cache) Get(key string, currentAnchor geom.Tile, now time.Time) (CachedPathCost, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(key)
	if !ok {
		return CachedPathCost{}, false
	}
	entry := v.(CachedPathCost)

	if now.Sub(entry.InsertedAt) > c.maxAge {
		c.lru.Remove(key)
		c.log.Debug("pathcache: evicted stale entry (age)", "key", key)
		return CachedPathCost{}, false
	}
	if geom.Chebyshev(currentAnchor, entry.Anchor) > MovementTolerance {
		c.lru.Remove(key)
		c.log.Debug("pathcache: evicted stale entry (movement)", "key", key)
		return CachedPathCost{}, false
	}

	return entry, true
}

// Invalidate drops a single cached entry, used when a collision-map
// version tag changes.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
}

// Len reports the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
