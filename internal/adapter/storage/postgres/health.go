package postgres

import (
	"context"
	"errors"
	"fmt"

	"pod-seller-ledger/internal/metrics"
)

var errSchemaMissing = errors.New("ledger schema not migrated")

// HealthCheck implements ports.HealthChecker for PostgreSQL. A reachable
// database without the ledger tables is reported as unhealthy.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the migrations have been applied.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var migrated bool
	err := h.pool.QueryRow(ctx, `SELECT to_regclass('public.advances') IS NOT NULL`).Scan(&migrated)
	switch {
	case err != nil:
		err = fmt.Errorf("ping postgres: %w", err)
	case !migrated:
		err = errSchemaMissing
	}
	return metrics.RecordHealth(h.Name(), err)
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
