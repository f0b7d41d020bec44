package postgres

import (
	"context"
	"errors"
	"fmt"

	"pod-seller-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SellerRepo implements ports.SellerRepository.
type SellerRepo struct {
	pool Pool
}

// NewSellerRepo creates a new SellerRepo.
func NewSellerRepo(pool Pool) *SellerRepo {
	return &SellerRepo{pool: pool}
}

// GetByID fetches a seller by UUID. Returns nil, nil when absent.
func (r *SellerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	query := `SELECT id, team_id, name, created_at FROM sellers WHERE id = $1`

	s := &domain.Seller{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.TeamID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller by id: %w", err)
	}
	return s, nil
}
