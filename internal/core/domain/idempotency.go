package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog represents a cached operation result to prevent double-processing.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "actor_id:scope:target_id:client_key"
	ResourceID   uuid.UUID `json:"resource_id"`
	ResponseJSON []byte    `json:"response_json"` // Cached response to return
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey scopes a client-supplied key to the caller, the
// operation and the entity it targets, so one key reused against another
// advance or seller executes instead of replaying.
func BuildIdempotencyKey(actorID uuid.UUID, scope string, targetID uuid.UUID, clientKey string) string {
	return actorID.String() + ":" + scope + ":" + targetID.String() + ":" + clientKey
}

// IdempotencyScope returns the operation segment of a key built by
// BuildIdempotencyKey, or "unknown" for keys of another shape.
func IdempotencyScope(key string) string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 3 || parts[1] == "" {
		return "unknown"
	}
	return parts[1]
}
