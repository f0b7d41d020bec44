package redis

import (
	"context"
	"time"

	"pod-seller-ledger/internal/metrics"

	goredis "github.com/redis/go-redis/v9"
)

const pingTimeout = time.Second

// HealthCheck implements ports.HealthChecker for Redis. Redis only backs the
// idempotency fast path and rate limiting, so a failure degrades the service
// without stopping ledger writes.
type HealthCheck struct {
	client *goredis.Client
}

// NewHealthCheck creates a Redis health checker.
func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks Redis connectivity and updates the dependency gauge.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return metrics.RecordHealth(h.Name(), h.client.Ping(ctx).Err())
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "redis"
}
