package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/quotes/usecase"
)

// CachingQuoteRepository decorates a QuoteRepository with Redis caching.
// Quote facts are append-only and refreshed by an external job, so a short
// TTL is the only invalidation needed.
type CachingQuoteRepository struct {
	inner     usecase.QuoteRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.QuoteRepository = (*CachingQuoteRepository)(nil)

// NewCachingQuoteRepository decorates a QuoteRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses
// "quotes".
func NewCachingQuoteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteRepository, namespace string) *CachingQuoteRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingQuoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListAll retrieves the raw quote rows, checking cache first then falling
// back to the database.
func (c *CachingQuoteRepository) ListAll(ctx context.Context) ([]entity.Quote, error) {
	return through(ctx, c.rdb, c.namespace+":all", c.ttl, c.inner.ListAll)
}

// LatestBySymbol retrieves a symbol's newest quote, checking cache first
// then falling back to the database.
func (c *CachingQuoteRepository) LatestBySymbol(ctx context.Context, symbol string) (*entity.Quote, error) {
	key := c.namespace + ":latest:" + safe(symbol)
	return through(ctx, c.rdb, key, c.ttl, func(ctx context.Context) (*entity.Quote, error) {
		return c.inner.LatestBySymbol(ctx, symbol)
	})
}
