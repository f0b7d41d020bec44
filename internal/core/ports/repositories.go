package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"pod-seller-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrDuplicateAdvanceNumber is returned by AdvanceRepository.Create when the
// advance number is already taken.
var ErrDuplicateAdvanceNumber = errors.New("advance number already exists")

// SellerRepository reads the seller directory.
type SellerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	// CreateIfAbsent inserts the wallet unless the seller already has one.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) (bool, error)
	GetBySellerID(ctx context.Context, sellerID uuid.UUID) (*domain.Wallet, error)
	GetBySellerIDForUpdate(ctx context.Context, tx pgx.Tx, sellerID uuid.UUID) (*domain.Wallet, error)
	Update(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
}

// AdvanceRepository defines persistence operations for advances.
type AdvanceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, advance *domain.Advance) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Advance, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Advance, error)
	Update(ctx context.Context, tx pgx.Tx, advance *domain.Advance) error
	// SumExposure totals outstanding amounts over domain.ExposureStatuses.
	// A nil tx reads outside any transaction.
	SumExposure(ctx context.Context, tx pgx.Tx, sellerID uuid.UUID) (decimal.Decimal, error)
	List(ctx context.Context, params AdvanceListParams) ([]domain.Advance, int64, error)
}

// AdvanceListParams holds filter + pagination for listing advances.
type AdvanceListParams struct {
	SellerID *uuid.UUID
	Status   *domain.AdvanceStatus
	Page     int
	PageSize int
}

// RepaymentRepository persists append-only repayment records.
type RepaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, repayment *domain.AdvanceRepayment) error
	ListByAdvance(ctx context.Context, advanceID uuid.UUID) ([]domain.AdvanceRepayment, error)
}

// WalletTransactionRepository persists append-only wallet ledger entries.
type WalletTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.WalletTransaction) error
	List(ctx context.Context, params TransactionListParams) ([]domain.WalletTransaction, int64, error)
}

// TransactionListParams holds filter + pagination for listing wallet transactions.
type TransactionListParams struct {
	SellerID uuid.UUID
	Type     *domain.TransactionType
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// AuditRepository persists audit records.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
