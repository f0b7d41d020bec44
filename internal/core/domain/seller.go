package domain

import (
	"time"

	"github.com/google/uuid"
)

// Seller is the read-only directory row for a seller account. Sellers are
// managed by the host back office; the ledger only reads them.
type Seller struct {
	ID        uuid.UUID  `json:"id"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
}

// HasTeam reports whether the seller is assigned to a team and may hold a wallet.
func (s *Seller) HasTeam() bool {
	return s.TeamID != nil && *s.TeamID != uuid.Nil
}
