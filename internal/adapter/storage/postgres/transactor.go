package postgres

import (
	"context"
	"fmt"

	"pod-seller-ledger/internal/metrics"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor using pgxpool.Pool. Every ledger
// unit of work (wallet posting, advance transition, repayment) starts here.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a new Transactor wrapping the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a new database transaction. Callers defer Rollback and
// Commit explicitly; nested savepoints are opened with tx.Begin. Row locks
// taken with FOR UPDATE, not the isolation level, serialize ledger writes.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("begin").Inc()
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}
