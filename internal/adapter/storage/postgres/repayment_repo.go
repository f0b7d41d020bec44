package postgres

import (
	"context"
	"fmt"

	"pod-seller-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RepaymentRepo implements ports.RepaymentRepository.
type RepaymentRepo struct {
	pool Pool
}

// NewRepaymentRepo creates a new RepaymentRepo.
func NewRepaymentRepo(pool Pool) *RepaymentRepo {
	return &RepaymentRepo{pool: pool}
}

// Create appends a repayment record within a database transaction.
func (r *RepaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.AdvanceRepayment) error {
	query := `INSERT INTO advance_repayments (id, advance_id, seller_id, amount, method, order_id, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.AdvanceID, p.SellerID, p.Amount, p.Method, p.OrderID, p.Note, p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert repayment: %w", err)
	}
	return nil
}

// ListByAdvance returns an advance's repayments, oldest first.
func (r *RepaymentRepo) ListByAdvance(ctx context.Context, advanceID uuid.UUID) ([]domain.AdvanceRepayment, error) {
	query := `SELECT id, advance_id, seller_id, amount, method, order_id, note, created_by, created_at
		FROM advance_repayments WHERE advance_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, advanceID)
	if err != nil {
		return nil, fmt.Errorf("list repayments: %w", err)
	}
	defer rows.Close()

	var repayments []domain.AdvanceRepayment
	for rows.Next() {
		p := domain.AdvanceRepayment{}
		if err := rows.Scan(
			&p.ID, &p.AdvanceID, &p.SellerID, &p.Amount, &p.Method, &p.OrderID, &p.Note, &p.CreatedBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan repayment row: %w", err)
		}
		repayments = append(repayments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate repayment rows: %w", err)
	}
	return repayments, nil
}
