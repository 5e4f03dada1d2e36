package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AuditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record appends one audit row. Callers dispatch it fire-and-forget; an error
// here is logged by the caller and dropped.
func (r *AuditRepository) Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, changes interface{}) error {
	changesJSON, _ := json.Marshal(changes)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_logs (actor_id, action, entity_type, entity_id, changes)
		VALUES ($1, $2, $3, $4, $5)
	`, actorID, action, entityType, entityID, changesJSON)
	return err
}
