// Package cache provides caching implementations for upstream sources.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
	"fx_dashboard/internal/feature/fxrates/usecase"
)

// CachingRateSource decorates a RateSource with Redis caching of the raw
// upstream responses. Upstream errors are never cached.
type CachingRateSource struct {
	inner     usecase.RateSource
	rdb       *redis.Client
	ttl       func() time.Duration
	namespace string
}

var _ usecase.RateSource = (*CachingRateSource)(nil)

// NewCachingRateSource decorates inner with Redis caching.
// If ttl is nil or yields a non-positive duration, entries expire after 5
// minutes. If namespace is empty, it uses "fx". A nil rdb disables caching.
func NewCachingRateSource(rdb *redis.Client, ttl func() time.Duration, inner usecase.RateSource, namespace string) *CachingRateSource {
	if namespace == "" {
		namespace = "fx"
	}
	return &CachingRateSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// History returns the cached history response or fetches and stores it.
func (c *CachingRateSource) History(ctx context.Context, pair entity.Pair, start, end string) ([]entity.RawPoint, error) {
	key := fmt.Sprintf("%s:history:%s:%s:%s", c.namespace, safe(string(pair)), safe(start), safe(end))
	return c.cached(ctx, key, func() ([]entity.RawPoint, error) {
		return c.inner.History(ctx, pair, start, end)
	})
}

// Predict returns the cached forecast response or fetches and stores it.
func (c *CachingRateSource) Predict(ctx context.Context, pair entity.Pair, horizon int) ([]entity.RawPoint, error) {
	key := fmt.Sprintf("%s:predict:%s:%d", c.namespace, safe(string(pair)), horizon)
	return c.cached(ctx, key, func() ([]entity.RawPoint, error) {
		return c.inner.Predict(ctx, pair, horizon)
	})
}

// Purge deletes every cached history and forecast entry of pair.
func (c *CachingRateSource) Purge(ctx context.Context, pair entity.Pair) (int, error) {
	if c.rdb == nil {
		return 0, nil
	}
	p := safe(string(pair))
	total := 0
	for _, pattern := range []string{
		fmt.Sprintf("%s:history:%s:*", c.namespace, p),
		fmt.Sprintf("%s:predict:%s:*", c.namespace, p),
	} {
		n, err := c.deleteByPattern(ctx, pattern)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (c *CachingRateSource) cached(ctx context.Context, key string, fetch func() ([]entity.RawPoint, error)) ([]entity.RawPoint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return fetch()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.RawPoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the FX API
	out, err := fetch()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.expiry()).Err()
	}

	return out, nil
}

func (c *CachingRateSource) expiry() time.Duration {
	if c.ttl != nil {
		if d := c.ttl(); d > 0 {
			return d
		}
	}
	return 5 * time.Minute
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingRateSource) deleteByPattern(ctx context.Context, pattern string) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return deleted, nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
