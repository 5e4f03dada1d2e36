package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog is one best-effort observability record. Writes are fire-and-forget;
// business transactions never depend on them.
type AuditLog struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	ActorID    uuid.UUID       `db:"actor_id" json:"actor_id"`
	Action     string          `db:"action" json:"action"`
	EntityType string          `db:"entity_type" json:"entity_type"`
	EntityID   uuid.UUID       `db:"entity_id" json:"entity_id"`
	Changes    json.RawMessage `db:"changes" json:"changes,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
