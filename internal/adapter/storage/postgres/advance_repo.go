package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pod-seller-ledger/internal/core/domain"
	"pod-seller-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const advanceColumns = `id, advance_number, seller_id, team_id, type, amount, status,
	outstanding_amount, repaid_amount, reason, due_date, requested_at,
	approved_at, approved_by, approval_note, rejected_at, rejected_by, rejection_note,
	disbursed_at, outstanding_at, repaid_at, created_at, updated_at`

// AdvanceRepo implements ports.AdvanceRepository.
type AdvanceRepo struct {
	pool Pool
}

// NewAdvanceRepo creates a new AdvanceRepo.
func NewAdvanceRepo(pool Pool) *AdvanceRepo {
	return &AdvanceRepo{pool: pool}
}

// Create inserts a new advance. A taken advance number is reported as
// ports.ErrDuplicateAdvanceNumber so callers can retry under a savepoint.
func (r *AdvanceRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Advance) error {
	query := `INSERT INTO advances (` + advanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	_, err := tx.Exec(ctx, query,
		a.ID, a.AdvanceNumber, a.SellerID, a.TeamID, a.Type, a.Amount, a.Status,
		a.OutstandingAmount, a.RepaidAmount, a.Reason, a.DueDate, a.RequestedAt,
		a.ApprovedAt, a.ApprovedBy, a.ApprovalNote, a.RejectedAt, a.RejectedBy, a.RejectionNote,
		a.DisbursedAt, a.OutstandingAt, a.RepaidAt, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "advances_advance_number_key") {
			return ports.ErrDuplicateAdvanceNumber
		}
		return fmt.Errorf("insert advance: %w", err)
	}
	return nil
}

// GetByID fetches an advance by UUID (non-locking read).
func (r *AdvanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE id = $1`

	a, err := scanAdvance(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get advance by id: %w", err)
	}
	return a, nil
}

// GetByIDForUpdate fetches an advance with pessimistic locking.
// This MUST be called within a transaction, before locking the wallet row.
func (r *AdvanceRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE id = $1 FOR UPDATE`

	a, err := scanAdvance(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get advance for update: %w", err)
	}
	return a, nil
}

// Update persists the mutable lifecycle fields of an advance.
func (r *AdvanceRepo) Update(ctx context.Context, tx pgx.Tx, a *domain.Advance) error {
	query := `UPDATE advances SET status = $1, outstanding_amount = $2, repaid_amount = $3,
		approved_at = $4, approved_by = $5, approval_note = $6,
		rejected_at = $7, rejected_by = $8, rejection_note = $9,
		disbursed_at = $10, outstanding_at = $11, repaid_at = $12, updated_at = $13
		WHERE id = $14`

	tag, err := tx.Exec(ctx, query,
		a.Status, a.OutstandingAmount, a.RepaidAmount,
		a.ApprovedAt, a.ApprovedBy, a.ApprovalNote,
		a.RejectedAt, a.RejectedBy, a.RejectionNote,
		a.DisbursedAt, a.OutstandingAt, a.RepaidAt, a.UpdatedAt,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("update advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("advance not found: %s", a.ID)
	}
	return nil
}

// SumExposure totals the outstanding amount of the seller's advances that
// still count against the credit limit.
func (r *AdvanceRepo) SumExposure(ctx context.Context, tx pgx.Tx, sellerID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(outstanding_amount), 0) FROM advances
		WHERE seller_id = $1 AND status = ANY($2)`

	statuses := make([]string, len(domain.ExposureStatuses))
	for i, s := range domain.ExposureStatuses {
		statuses[i] = string(s)
	}

	var total decimal.Decimal
	if err := conn(r.pool, tx).QueryRow(ctx, query, sellerID, statuses).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum advance exposure: %w", err)
	}
	return total, nil
}

// List fetches advances with filtering and pagination, newest first.
func (r *AdvanceRepo) List(ctx context.Context, params ports.AdvanceListParams) ([]domain.Advance, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.SellerID != nil {
		conditions = append(conditions, fmt.Sprintf("seller_id = $%d", argIdx))
		args = append(args, *params.SellerID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM advances %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count advances: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM advances %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		advanceColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list advances: %w", err)
	}
	defer rows.Close()

	var advances []domain.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan advance row: %w", err)
		}
		advances = append(advances, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate advance rows: %w", err)
	}
	return advances, total, nil
}

// scanAdvance scans one advance row. Returns nil, nil on no rows.
func scanAdvance(row pgx.Row) (*domain.Advance, error) {
	a := &domain.Advance{}
	err := row.Scan(
		&a.ID, &a.AdvanceNumber, &a.SellerID, &a.TeamID, &a.Type, &a.Amount, &a.Status,
		&a.OutstandingAmount, &a.RepaidAmount, &a.Reason, &a.DueDate, &a.RequestedAt,
		&a.ApprovedAt, &a.ApprovedBy, &a.ApprovalNote, &a.RejectedAt, &a.RejectedBy, &a.RejectionNote,
		&a.DisbursedAt, &a.OutstandingAt, &a.RepaidAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}
