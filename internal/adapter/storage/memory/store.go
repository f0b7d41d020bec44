// Package memory is an in-process Ledger Store. It implements every
// repository port plus ports.DBTransactor with real commit and rollback.
//
// Transactions are serialized: Begin blocks until the previous transaction
// has committed or rolled back, which gives the same mutual exclusion the
// Postgres adapter gets from SELECT ... FOR UPDATE. Reads outside a
// transaction take no transaction lock and may observe uncommitted writes.
package memory

import (
	"context"
	"errors"
	"sync"

	"pod-seller-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errForeignTx = errors.New("memory: transaction was not started by this store")

// Store holds every table in maps guarded by mu. sem admits one open
// transaction at a time.
type Store struct {
	sem chan struct{}

	mu             sync.RWMutex
	sellers        map[uuid.UUID]domain.Seller
	wallets        map[uuid.UUID]domain.Wallet // keyed by seller id
	advances       map[uuid.UUID]domain.Advance
	advanceNumbers map[string]uuid.UUID
	advanceOrder   []uuid.UUID
	repayments     []domain.AdvanceRepayment
	walletTxns     []domain.WalletTransaction
	idempotency    map[string]domain.IdempotencyLog
	audits         []domain.AuditLog
}

// New creates an empty store.
func New() *Store {
	return &Store{
		sem:            make(chan struct{}, 1),
		sellers:        make(map[uuid.UUID]domain.Seller),
		wallets:        make(map[uuid.UUID]domain.Wallet),
		advances:       make(map[uuid.UUID]domain.Advance),
		advanceNumbers: make(map[string]uuid.UUID),
		idempotency:    make(map[string]domain.IdempotencyLog),
	}
}

// PutSeller upserts a seller directory row.
func (s *Store) PutSeller(seller domain.Seller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sellers[seller.ID] = seller
}

// Begin opens a transaction, waiting for any open one to finish.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &Tx{store: s, log: &undoLog{}}, nil
}

// undoLog records inverse operations in write order.
type undoLog struct {
	entries []func()
}

// Tx is a store transaction. Savepoints opened with Begin share the parent's
// undo log and unwind only the entries recorded after them.
//
// Only Begin, Commit and Rollback are implemented; the embedded pgx.Tx is
// nil and the repositories never call through it.
type Tx struct {
	pgx.Tx

	store  *Store
	log    *undoLog
	mark   int
	parent *Tx
	closed bool
}

// Begin opens a savepoint.
func (t *Tx) Begin(_ context.Context) (pgx.Tx, error) {
	if t.closed {
		return nil, pgx.ErrTxClosed
	}
	t.store.mu.RLock()
	mark := len(t.log.entries)
	t.store.mu.RUnlock()
	return &Tx{store: t.store, log: t.log, mark: mark, parent: t}, nil
}

// Commit makes the writes durable. Committing a savepoint keeps its writes
// in the enclosing transaction.
func (t *Tx) Commit(_ context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	if t.parent == nil {
		<-t.store.sem
	}
	return nil
}

// Rollback discards writes made since Begin. It returns pgx.ErrTxClosed
// after Commit, like pgx.
func (t *Tx) Rollback(_ context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true

	t.store.mu.Lock()
	for i := len(t.log.entries) - 1; i >= t.mark; i-- {
		t.log.entries[i]()
	}
	t.log.entries = t.log.entries[:t.mark]
	t.store.mu.Unlock()

	if t.parent == nil {
		<-t.store.sem
	}
	return nil
}

// record appends an inverse operation. Callers hold store.mu.
func (t *Tx) record(undo func()) {
	t.log.entries = append(t.log.entries, undo)
}

// writeTx resolves the transaction handle passed to a repository write.
func (s *Store) writeTx(tx pgx.Tx) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok || t.store != s {
		return nil, errForeignTx
	}
	if t.closed {
		return nil, pgx.ErrTxClosed
	}
	return t, nil
}

// AuditLogs returns a copy of the persisted audit records.
func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AuditLog(nil), s.audits...)
}

// page slices items for 1-based page/pageSize. A non-positive pageSize
// returns everything.
func page[T any](items []T, pageNum, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if pageNum < 1 {
		pageNum = 1
	}
	start := (pageNum - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
