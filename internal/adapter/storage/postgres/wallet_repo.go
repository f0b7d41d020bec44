package postgres

import (
	"context"
	"errors"
	"fmt"

	"pod-seller-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, seller_id, team_id, currency, balance, available_balance, hold_amount,
	advance_limit, total_advances, total_repayments, total_profit_share,
	last_activity_at, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// CreateIfAbsent inserts the wallet unless one already exists for the seller.
// Concurrent creators converge on a single row.
func (r *WalletRepo) CreateIfAbsent(ctx context.Context, tx pgx.Tx, w *domain.Wallet) (bool, error) {
	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (seller_id) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		w.ID, w.SellerID, w.TeamID, w.Currency, w.Balance, w.AvailableBalance, w.HoldAmount,
		w.AdvanceLimit, w.TotalAdvances, w.TotalRepayments, w.TotalProfitShare,
		w.LastActivityAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert wallet: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetBySellerID fetches a seller's wallet (non-locking read).
func (r *WalletRepo) GetBySellerID(ctx context.Context, sellerID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE seller_id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, sellerID))
	if err != nil {
		return nil, fmt.Errorf("get wallet by seller: %w", err)
	}
	return w, nil
}

// GetBySellerIDForUpdate fetches a seller's wallet with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetBySellerIDForUpdate(ctx context.Context, tx pgx.Tx, sellerID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE seller_id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, sellerID))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update by seller: %w", err)
	}
	return w, nil
}

// Update writes balances, counters and activity time within a transaction.
func (r *WalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `UPDATE wallets SET balance = $1, available_balance = $2, hold_amount = $3,
		advance_limit = $4, total_advances = $5, total_repayments = $6, total_profit_share = $7,
		last_activity_at = $8, updated_at = $9
		WHERE id = $10`

	tag, err := tx.Exec(ctx, query,
		w.Balance, w.AvailableBalance, w.HoldAmount,
		w.AdvanceLimit, w.TotalAdvances, w.TotalRepayments, w.TotalProfitShare,
		w.LastActivityAt, w.UpdatedAt, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	return nil
}

// scanWallet scans one wallet row. Returns nil, nil on no rows.
func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.SellerID, &w.TeamID, &w.Currency, &w.Balance, &w.AvailableBalance, &w.HoldAmount,
		&w.AdvanceLimit, &w.TotalAdvances, &w.TotalRepayments, &w.TotalProfitShare,
		&w.LastActivityAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}
