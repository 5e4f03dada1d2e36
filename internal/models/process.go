package models

import (
	"time"

	"github.com/google/uuid"
)

// Process links one candidate, one firm and one position through a hiring
// pipeline. At most one active process (closed_at IS NULL) may exist per
// (candidate, firm, position) triple; closing sets closed_at, reopening
// clears it. Processes are never deleted.
type Process struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	CandidateID    uuid.UUID    `db:"candidate_id" json:"candidate_id"`
	FirmID         uuid.UUID    `db:"firm_id" json:"firm_id"`
	PositionID     uuid.UUID    `db:"position_id" json:"position_id"`
	Stage          ProcessStage `db:"stage" json:"stage"`
	FitnessScore   *float64     `db:"fitness_score" json:"fitness_score,omitempty"`
	AssignedToID   *uuid.UUID   `db:"assigned_to_id" json:"assigned_to_id,omitempty"`
	ClosedAt       *time.Time   `db:"closed_at" json:"closed_at,omitempty"`
	StageChangedAt time.Time    `db:"stage_changed_at" json:"stage_changed_at"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the process is still open.
func (p *Process) IsActive() bool {
	return p.ClosedAt == nil
}

// ProcessStageHistory is one append-only stage transition record.
// FromStage is nil only for the creation event.
type ProcessStageHistory struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	ProcessID   uuid.UUID     `db:"process_id" json:"process_id"`
	FromStage   *ProcessStage `db:"from_stage" json:"from_stage,omitempty"`
	ToStage     ProcessStage  `db:"to_stage" json:"to_stage"`
	Note        *string       `db:"note" json:"note,omitempty"`
	ChangedByID uuid.UUID     `db:"changed_by_id" json:"changed_by_id"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}
