package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachingListRepository decorates a whole-table ListAll read with Redis
// caching. Daily snapshot tables (sector performance, returns) only change
// when the ingestion job runs, so one key per table is enough.
type CachingListRepository[T any] struct {
	fetch func(ctx context.Context) ([]T, error)
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

// NewCachingListRepository wraps fetch with a Redis-backed list cache under
// the given key. If ttl is 0, it defaults to 5 minutes.
func NewCachingListRepository[T any](rdb *redis.Client, ttl time.Duration, key string, fetch func(ctx context.Context) ([]T, error)) *CachingListRepository[T] {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingListRepository[T]{fetch: fetch, rdb: rdb, ttl: ttl, key: safe(key)}
}

// ListAll retrieves the rows, checking cache first then falling back to the
// source.
func (c *CachingListRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	return through(ctx, c.rdb, c.key, c.ttl, c.fetch)
}
