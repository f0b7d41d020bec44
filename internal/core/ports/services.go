package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"pod-seller-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(actorID uuid.UUID, roles []string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ActorID uuid.UUID
	Roles   []string
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RateLimitStore counts requests in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// AuditService is the fire-and-forget audit sink.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// WalletService owns wallet lifecycle, credit queries and manual postings.
type WalletService interface {
	GetOrCreateWallet(ctx context.Context, sellerID uuid.UUID) (*domain.Wallet, error)
	GetAvailableCredit(ctx context.Context, sellerID uuid.UUID) (*domain.CreditSummary, error)
	GetWalletSummary(ctx context.Context, actor domain.Actor, sellerID uuid.UUID) (*WalletSummary, error)
	PostTransaction(ctx context.Context, cmd PostTransactionCommand) (*TransactionResult, error)
	ListTransactions(ctx context.Context, actor domain.Actor, params TransactionListParams) ([]domain.WalletTransaction, int64, error)
}

// WalletLedger is the transaction-scoped wallet surface. Every
// balance-affecting write goes through Apply using the caller's tx.
type WalletLedger interface {
	// EnsureWallet returns the seller's locked wallet, creating it first if
	// absent. created reports whether this call inserted it.
	EnsureWallet(ctx context.Context, tx pgx.Tx, seller *domain.Seller) (wallet *domain.Wallet, created bool, err error)
	// LockWalletBySeller returns the locked wallet or nil if none exists.
	LockWalletBySeller(ctx context.Context, tx pgx.Tx, sellerID uuid.UUID) (*domain.Wallet, error)
	Apply(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet, entry LedgerEntry) (*domain.WalletTransaction, error)
}

// LedgerEntry describes one balance-affecting event.
type LedgerEntry struct {
	Type          domain.TransactionType
	Amount        decimal.Decimal
	ActorID       uuid.UUID
	ReferenceType domain.ReferenceType
	ReferenceID   *uuid.UUID
	Description   string
}

// WalletSummary is a wallet plus its credit position.
type WalletSummary struct {
	Wallet *domain.Wallet        `json:"wallet"`
	Credit *domain.CreditSummary `json:"credit"`
}

// PostTransactionCommand is a validated manual wallet posting.
type PostTransactionCommand struct {
	Actor          domain.Actor
	SellerID       uuid.UUID
	Type           domain.TransactionType
	Amount         decimal.Decimal
	Description    string
	IdempotencyKey string
}

// TransactionResult is the wallet state after a posting plus its ledger entry.
type TransactionResult struct {
	Wallet      *domain.Wallet            `json:"wallet"`
	Transaction *domain.WalletTransaction `json:"transaction"`
}

// AdvanceService owns the cash-advance state machine.
type AdvanceService interface {
	RequestAdvance(ctx context.Context, cmd RequestAdvanceCommand) (*domain.Advance, error)
	Approve(ctx context.Context, actor domain.Actor, advanceID uuid.UUID, note string) (*domain.Advance, error)
	Reject(ctx context.Context, actor domain.Actor, advanceID uuid.UUID, reason string) (*domain.Advance, error)
	Disburse(ctx context.Context, actor domain.Actor, advanceID uuid.UUID) (*DisbursementResult, error)
	Repay(ctx context.Context, cmd RepayCommand) (*RepaymentResult, error)
	MarkOutstanding(ctx context.Context, actor domain.Actor, advanceID uuid.UUID) (*domain.Advance, error)
	GetAdvance(ctx context.Context, actor domain.Actor, advanceID uuid.UUID) (*domain.Advance, error)
	ListAdvances(ctx context.Context, actor domain.Actor, params AdvanceListParams) ([]domain.Advance, int64, error)
	ListRepayments(ctx context.Context, actor domain.Actor, advanceID uuid.UUID) ([]domain.AdvanceRepayment, error)
}

// RequestAdvanceCommand is a validated advance request by a seller.
type RequestAdvanceCommand struct {
	Actor   domain.Actor
	Type    domain.AdvanceType
	Amount  decimal.Decimal
	Reason  string
	DueDate *time.Time
}

// RepayCommand is a validated repayment against one advance.
type RepayCommand struct {
	Actor          domain.Actor
	AdvanceID      uuid.UUID
	Amount         decimal.Decimal
	Method         domain.RepaymentMethod
	OrderID        *string
	Note           string
	IdempotencyKey string
}

// DisbursementResult is the disbursed advance plus its ADVANCE ledger entry.
type DisbursementResult struct {
	Advance     *domain.Advance           `json:"advance"`
	Wallet      *domain.Wallet            `json:"wallet"`
	Transaction *domain.WalletTransaction `json:"transaction"`
}

// RepaymentResult is the repaid advance plus the repayment record. Wallet and
// Transaction are nil when the seller has no wallet.
type RepaymentResult struct {
	Advance     *domain.Advance           `json:"advance"`
	Repayment   *domain.AdvanceRepayment  `json:"repayment"`
	Wallet      *domain.Wallet            `json:"wallet,omitempty"`
	Transaction *domain.WalletTransaction `json:"transaction,omitempty"`
}
