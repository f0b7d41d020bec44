package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionWalletCreated      AuditAction = "WALLET_CREATED"
	AuditActionWalletTransaction  AuditAction = "WALLET_TRANSACTION"
	AuditActionAdvanceRequested   AuditAction = "ADVANCE_REQUESTED"
	AuditActionAdvanceApproved    AuditAction = "ADVANCE_APPROVED"
	AuditActionAdvanceRejected    AuditAction = "ADVANCE_REJECTED"
	AuditActionAdvanceDisbursed   AuditAction = "ADVANCE_DISBURSED"
	AuditActionAdvanceRepaid      AuditAction = "ADVANCE_REPAID"
	AuditActionAdvanceOutstanding AuditAction = "ADVANCE_OUTSTANDING"
)

// Entity types named in audit records.
const (
	EntityWallet            = "WALLET"
	EntityWalletTransaction = "WALLET_TRANSACTION"
	EntityAdvance           = "ADVANCE"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID         uuid.UUID      `json:"id"`
	ActorID    uuid.UUID      `json:"actor_id"`
	Action     AuditAction    `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
