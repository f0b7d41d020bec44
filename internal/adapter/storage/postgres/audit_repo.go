package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"pod-seller-ledger/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a PostgreSQL-backed audit repository.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create persists one audit record outside any ledger transaction.
func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	var metadata []byte
	if len(entry.Metadata) > 0 {
		var err error
		if metadata, err = json.Marshal(entry.Metadata); err != nil {
			return fmt.Errorf("marshal audit metadata: %w", err)
		}
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, actor_id, action, entity_type, entity_id, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.ActorID, string(entry.Action), entry.EntityType,
		entry.EntityID, metadata, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
