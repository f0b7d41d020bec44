package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/metrics"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis. It is the
// fast path in front of the idempotency_logs table; keys are grouped by
// operation so repay and manual-posting replays can be inspected apart.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: keyPrefix + "idempotency:",
	}
}

// redisKey places the operation scope first: psl:idempotency:<scope>:<key>.
func (c *IdempotencyCache) redisKey(key string) string {
	return c.prefix + domain.IdempotencyScope(key) + ":" + key
}

// Get retrieves a cached response by idempotency key.
// Returns nil, nil if the key does not exist.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	scope := domain.IdempotencyScope(key)
	val, err := c.client.Get(ctx, c.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			metrics.IdempotencyLookupsTotal.WithLabelValues(scope, "redis", "miss").Inc()
			return nil, nil
		}
		metrics.IdempotencyLookupsTotal.WithLabelValues(scope, "redis", "error").Inc()
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	metrics.IdempotencyLookupsTotal.WithLabelValues(scope, "redis", "hit").Inc()
	return val, nil
}

// Set stores a committed response with TTL. The first response stored for a
// key wins; later writes for the same key are ignored.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.SetNX(ctx, c.redisKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}
