package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a ledger operation.
type Actor struct {
	ID         uuid.UUID `json:"id"`
	Roles      []string  `json:"roles"`
	Privileged bool      `json:"privileged"`
}

// CanAccessSeller reports whether the actor may read or act on the given
// seller's wallet and advances.
func (a Actor) CanAccessSeller(sellerID uuid.UUID) bool {
	return a.Privileged || a.ID == sellerID
}

// RolePolicy decides which roles carry the finance/admin capability.
type RolePolicy struct {
	privileged map[string]struct{}
}

// NewRolePolicy builds a policy from the configured privileged role names.
// Role names are compared case-insensitively.
func NewRolePolicy(privilegedRoles []string) RolePolicy {
	p := RolePolicy{privileged: make(map[string]struct{}, len(privilegedRoles))}
	for _, r := range privilegedRoles {
		p.privileged[strings.ToUpper(strings.TrimSpace(r))] = struct{}{}
	}
	return p
}

// IsPrivileged reports whether any of roles is privileged.
func (p RolePolicy) IsPrivileged(roles []string) bool {
	for _, r := range roles {
		if _, ok := p.privileged[strings.ToUpper(strings.TrimSpace(r))]; ok {
			return true
		}
	}
	return false
}

// Actor resolves an identity and role set into an Actor.
func (p RolePolicy) Actor(id uuid.UUID, roles []string) Actor {
	return Actor{ID: id, Roles: roles, Privileged: p.IsPrivileged(roles)}
}
