package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheKey is the Redis key holding the cached lodge list.
const DefaultCacheKey = "lodgenet:lodges"

// RedisKV is the subset of the go-redis client Cached uses.
type RedisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Cached decorates a Catalog, caching FetchAllLodges in Redis.
// Connections are always read from the wrapped catalog because they are
// filtered per request. Cache failures fall back to the wrapped catalog.
type Cached struct {
	next Catalog
	kv   RedisKV
	key  string
	ttl  time.Duration
	log  *slog.Logger
}

// CacheOption configures a Cached catalog.
type CacheOption func(*Cached)

// WithCacheKey overrides DefaultCacheKey.
func WithCacheKey(key string) CacheOption {
	return func(c *Cached) {
		if key != "" {
			c.key = key
		}
	}
}

// WithCacheTTL sets the expiration of the cached entry; 0 keeps it forever.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *Cached) { c.ttl = ttl }
}

// WithCacheLogger sets the logger used for cache diagnostics.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *Cached) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCached wraps next with a Redis lodge cache.
func NewCached(next Catalog, kv RedisKV, opts ...CacheOption) *Cached {
	c := &Cached{next: next, kv: kv, key: DefaultCacheKey, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchAllLodges serves the lodge list from Redis when present, otherwise
// from the wrapped catalog, then populates the cache.
func (c *Cached) FetchAllLodges(ctx context.Context) ([]Lodge, error) {
	raw, err := c.kv.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var lodges []Lodge
		uerr := json.Unmarshal(raw, &lodges)
		if uerr == nil {
			c.log.Debug("lodge_cache_hit", "key", c.key, "count", len(lodges))
			return lodges, nil
		}
		c.log.Warn("lodge_cache_decode_error", "key", c.key, "err", uerr)
	case errors.Is(err, redis.Nil):
		c.log.Debug("lodge_cache_miss", "key", c.key)
	default:
		c.log.Warn("lodge_cache_get_error", "key", c.key, "err", err)
	}

	lodges, err := c.next.FetchAllLodges(ctx)
	if err != nil {
		return nil, err
	}
	if len(lodges) == 0 {
		return lodges, nil
	}

	buf, err := json.Marshal(lodges)
	if err != nil {
		c.log.Warn("lodge_cache_encode_error", "err", err)
		return lodges, nil
	}
	if err = c.kv.Set(ctx, c.key, buf, c.ttl).Err(); err != nil {
		c.log.Warn("lodge_cache_set_error", "key", c.key, "err", err)
	}

	return lodges, nil
}

// FetchConnectionsUpTo delegates to the wrapped catalog.
func (c *Cached) FetchConnectionsUpTo(ctx context.Context, idx Index, year int) ([]Connection, error) {
	return c.next.FetchConnectionsUpTo(ctx, idx, year)
}

var _ Catalog = (*Cached)(nil)
