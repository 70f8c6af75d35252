// Package cache provides Redis caching decorators for repository
// interfaces. All caching is best effort: a missing or failing Redis never
// fails a read, it only removes the shortcut.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// through returns the cached value under key, falling back to fetch and
// storing the result. A nil client bypasses the cache entirely.
func through[T any](ctx context.Context, rdb *redis.Client, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if rdb == nil {
		return fetch(ctx)
	}

	if b, err := rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupted entry: drop it and fall through to the source.
		_ = rdb.Del(ctx, key).Err()
	}

	out, err := fetch(ctx)
	if err != nil {
		return out, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = rdb.Set(ctx, key, b, ttl).Err()
	}
	return out, nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
