package memory

import (
	"context"
	"fmt"

	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- Sellers ---

// SellerRepo implements ports.SellerRepository.
type SellerRepo struct{ s *Store }

// Sellers returns the seller repository.
func (s *Store) Sellers() *SellerRepo { return &SellerRepo{s: s} }

func (r *SellerRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Seller, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seller, ok := r.s.sellers[id]
	if !ok {
		return nil, nil
	}
	return &seller, nil
}

// --- Wallets ---

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct{ s *Store }

// Wallets returns the wallet repository.
func (s *Store) Wallets() *WalletRepo { return &WalletRepo{s: s} }

func (r *WalletRepo) CreateIfAbsent(_ context.Context, tx pgx.Tx, w *domain.Wallet) (bool, error) {
	t, err := r.s.writeTx(tx)
	if err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.wallets[w.SellerID]; exists {
		return false, nil
	}
	r.s.wallets[w.SellerID] = *w
	sellerID := w.SellerID
	t.record(func() { delete(r.s.wallets, sellerID) })
	return true, nil
}

func (r *WalletRepo) GetBySellerID(_ context.Context, sellerID uuid.UUID) (*domain.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.wallets[sellerID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// GetBySellerIDForUpdate reads within tx. The store already serializes
// transactions, so the row is effectively locked.
func (r *WalletRepo) GetBySellerIDForUpdate(ctx context.Context, tx pgx.Tx, sellerID uuid.UUID) (*domain.Wallet, error) {
	if _, err := r.s.writeTx(tx); err != nil {
		return nil, err
	}
	return r.GetBySellerID(ctx, sellerID)
}

func (r *WalletRepo) Update(_ context.Context, tx pgx.Tx, w *domain.Wallet) error {
	t, err := r.s.writeTx(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.wallets[w.SellerID]
	if !ok || prev.ID != w.ID {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	r.s.wallets[w.SellerID] = *w
	t.record(func() { r.s.wallets[prev.SellerID] = prev })
	return nil
}

// --- Advances ---

// AdvanceRepo implements ports.AdvanceRepository.
type AdvanceRepo struct{ s *Store }

// Advances returns the advance repository.
func (s *Store) Advances() *AdvanceRepo { return &AdvanceRepo{s: s} }

func (r *AdvanceRepo) Create(_ context.Context, tx pgx.Tx, a *domain.Advance) error {
	t, err := r.s.writeTx(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.advanceNumbers[a.AdvanceNumber]; taken {
		return ports.ErrDuplicateAdvanceNumber
	}
	if _, exists := r.s.advances[a.ID]; exists {
		return fmt.Errorf("advance already exists: %s", a.ID)
	}

	r.s.advances[a.ID] = *a
	r.s.advanceNumbers[a.AdvanceNumber] = a.ID
	r.s.advanceOrder = append(r.s.advanceOrder, a.ID)

	id, number, n := a.ID, a.AdvanceNumber, len(r.s.advanceOrder)-1
	t.record(func() {
		delete(r.s.advances, id)
		delete(r.s.advanceNumbers, number)
		r.s.advanceOrder = r.s.advanceOrder[:n]
	})
	return nil
}

func (r *AdvanceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Advance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.advances[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AdvanceRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Advance, error) {
	if _, err := r.s.writeTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *AdvanceRepo) Update(_ context.Context, tx pgx.Tx, a *domain.Advance) error {
	t, err := r.s.writeTx(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.advances[a.ID]
	if !ok {
		return fmt.Errorf("advance not found: %s", a.ID)
	}
	r.s.advances[a.ID] = *a
	t.record(func() { r.s.advances[prev.ID] = prev })
	return nil
}

// SumExposure totals outstanding amounts over the exposure statuses. tx may
// be nil.
func (r *AdvanceRepo) SumExposure(_ context.Context, tx pgx.Tx, sellerID uuid.UUID) (decimal.Decimal, error) {
	if tx != nil {
		if _, err := r.s.writeTx(tx); err != nil {
			return decimal.Zero, err
		}
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := decimal.Zero
	for _, a := range r.s.advances {
		if a.SellerID == sellerID && a.Status.IsExposure() {
			total = total.Add(a.OutstandingAmount)
		}
	}
	return total, nil
}

// List returns matching advances newest first.
func (r *AdvanceRepo) List(_ context.Context, params ports.AdvanceListParams) ([]domain.Advance, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []domain.Advance
	for i := len(r.s.advanceOrder) - 1; i >= 0; i-- {
		a := r.s.advances[r.s.advanceOrder[i]]
		if params.SellerID != nil && a.SellerID != *params.SellerID {
			continue
		}
		if params.Status != nil && a.Status != *params.Status {
			continue
		}
		matched = append(matched, a)
	}
	return page(matched, params.Page, params.PageSize), int64(len(matched)), nil
}

// --- Repayments ---

// RepaymentRepo implements ports.RepaymentRepository.
type RepaymentRepo struct{ s *Store }

// Repayments returns the repayment repository.
func (s *Store) Repayments() *RepaymentRepo { return &RepaymentRepo{s: s} }

func (r *RepaymentRepo) Create(_ context.Context, tx pgx.Tx, p *domain.AdvanceRepayment) error {
	t, err := r.s.writeTx(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.repayments = append(r.s.repayments, *p)
	n := len(r.s.repayments) - 1
	t.record(func() { r.s.repayments = r.s.repayments[:n] })
	return nil
}

// ListByAdvance returns an advance's repayments oldest first.
func (r *RepaymentRepo) ListByAdvance(_ context.Context, advanceID uuid.UUID) ([]domain.AdvanceRepayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.AdvanceRepayment
	for _, p := range r.s.repayments {
		if p.AdvanceID == advanceID {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- Wallet transactions ---

// WalletTransactionRepo implements ports.WalletTransactionRepository.
type WalletTransactionRepo struct{ s *Store }

// WalletTransactions returns the wallet transaction repository.
func (s *Store) WalletTransactions() *WalletTransactionRepo {
	return &WalletTransactionRepo{s: s}
}

func (r *WalletTransactionRepo) Create(_ context.Context, tx pgx.Tx, txn *domain.WalletTransaction) error {
	t, err := r.s.writeTx(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.walletTxns = append(r.s.walletTxns, *txn)
	n := len(r.s.walletTxns) - 1
	t.record(func() { r.s.walletTxns = r.s.walletTxns[:n] })
	return nil
}

// List returns a seller's ledger entries newest first.
func (r *WalletTransactionRepo) List(_ context.Context, params ports.TransactionListParams) ([]domain.WalletTransaction, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []domain.WalletTransaction
	for i := len(r.s.walletTxns) - 1; i >= 0; i-- {
		t := r.s.walletTxns[i]
		if t.SellerID != params.SellerID {
			continue
		}
		if params.Type != nil && t.Type != *params.Type {
			continue
		}
		if params.From != nil && t.CreatedAt.Before(*params.From) {
			continue
		}
		if params.To != nil && t.CreatedAt.After(*params.To) {
			continue
		}
		matched = append(matched, t)
	}
	return page(matched, params.Page, params.PageSize), int64(len(matched)), nil
}

// --- Idempotency ---

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct{ s *Store }

// Idempotency returns the idempotency log repository.
func (s *Store) Idempotency() *IdempotencyRepo { return &IdempotencyRepo{s: s} }

func (r *IdempotencyRepo) Create(_ context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	t, err := r.s.writeTx(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.idempotency[log.Key]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateIdempotencyKey, log.Key)
	}
	r.s.idempotency[log.Key] = *log
	key := log.Key
	t.record(func() { delete(r.s.idempotency, key) })
	return nil
}

func (r *IdempotencyRepo) Get(_ context.Context, key string) (*domain.IdempotencyLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	log, ok := r.s.idempotency[key]
	if !ok {
		return nil, nil
	}
	return &log, nil
}

// --- Audit ---

// AuditRepo implements ports.AuditRepository. Audit records are written
// outside any transaction.
type AuditRepo struct{ s *Store }

// Audit returns the audit repository.
func (s *Store) Audit() *AuditRepo { return &AuditRepo{s: s} }

func (r *AuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audits = append(r.s.audits, *entry)
	return nil
}

// Compile-time interface checks.
var (
	_ ports.DBTransactor                = (*Store)(nil)
	_ ports.SellerRepository            = (*SellerRepo)(nil)
	_ ports.WalletRepository            = (*WalletRepo)(nil)
	_ ports.AdvanceRepository           = (*AdvanceRepo)(nil)
	_ ports.RepaymentRepository         = (*RepaymentRepo)(nil)
	_ ports.WalletTransactionRepository = (*WalletTransactionRepo)(nil)
	_ ports.IdempotencyRepository       = (*IdempotencyRepo)(nil)
	_ ports.AuditRepository             = (*AuditRepo)(nil)
)
