package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/topogame/TalentFlow-sub001/internal/models"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
	"github.com/topogame/TalentFlow-sub001/internal/repository/common"
)

type ProcessRepository struct {
	db *sqlx.DB
}

func NewProcessRepository(db *sqlx.DB) *ProcessRepository {
	return &ProcessRepository{db: db}
}

func (r *ProcessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Process, error) {
	return common.GetByID[models.Process](ctx, r.db, "processes", id, apperror.ErrProcessNotFound)
}

// ActiveCandidateIDsForPosition returns the ids of candidates with an active
// process against the given position (the matching exclusion set).
func (r *ProcessRepository) ActiveCandidateIDsForPosition(ctx context.Context, positionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, `
		SELECT candidate_id FROM processes
		WHERE position_id = $1 AND closed_at IS NULL
	`, positionID)
	if err != nil {
		return nil, fmt.Errorf("list active candidate ids for position: %w", err)
	}
	return ids, nil
}

// FindActive returns the active process for the exact triple, or nil.
func (r *ProcessRepository) FindActive(ctx context.Context, candidateID, firmID, positionID uuid.UUID) (*models.Process, error) {
	var process models.Process
	err := r.db.GetContext(ctx, &process, `
		SELECT * FROM processes
		WHERE candidate_id = $1 AND firm_id = $2 AND position_id = $3 AND closed_at IS NULL
	`, candidateID, firmID, positionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active process: %w", err)
	}
	return &process, nil
}

// HasNegativeHistory reports whether any process for (candidate, firm) ever
// recorded a transition into the negative stage, across all positions.
func (r *ProcessRepository) HasNegativeHistory(ctx context.Context, candidateID, firmID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM process_stage_history h
			JOIN processes p ON p.id = h.process_id
			WHERE p.candidate_id = $1 AND p.firm_id = $2 AND h.to_stage = $3
		)
	`, candidateID, firmID, models.StageNegative)
	if err != nil {
		return false, fmt.Errorf("check negative history: %w", err)
	}
	return exists, nil
}

// CreateWithHistory inserts the process and its creation history row in one
// transaction; either both land or neither does.
func (r *ProcessRepository) CreateWithHistory(ctx context.Context, process *models.Process, history *models.ProcessStageHistory) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO processes (id, candidate_id, firm_id, position_id, stage, fitness_score,
				assigned_to_id, closed_at, stage_changed_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, process.ID, process.CandidateID, process.FirmID, process.PositionID, process.Stage,
			process.FitnessScore, process.AssignedToID, process.ClosedAt, process.StageChangedAt,
			process.CreatedAt, process.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert process: %w", err)
		}

		return insertHistory(ctx, tx, history)
	})
}

// UpdateStageWithHistory applies a stage transition and appends its history
// row atomically. The row lock serializes concurrent transitions on the same
// process; both history rows persist in commit order.
func (r *ProcessRepository) UpdateStageWithHistory(ctx context.Context, process *models.Process, history *models.ProcessStageHistory) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var locked uuid.UUID
		if err := tx.GetContext(ctx, &locked, `SELECT id FROM processes WHERE id = $1 FOR UPDATE`, process.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperror.ErrProcessNotFound
			}
			return fmt.Errorf("lock process: %w", err)
		}

		_, err := tx.ExecContext(ctx, `
			UPDATE processes
			SET stage = $2, closed_at = $3, stage_changed_at = $4, updated_at = $4
			WHERE id = $1
		`, process.ID, process.Stage, process.ClosedAt, process.StageChangedAt)
		if err != nil {
			return fmt.Errorf("update process stage: %w", err)
		}

		return insertHistory(ctx, tx, history)
	})
}

// ListHistory returns every transition of a process in creation order.
func (r *ProcessRepository) ListHistory(ctx context.Context, processID uuid.UUID) ([]models.ProcessStageHistory, error) {
	var history []models.ProcessStageHistory
	err := r.db.SelectContext(ctx, &history, `
		SELECT * FROM process_stage_history
		WHERE process_id = $1
		ORDER BY created_at ASC
	`, processID)
	if err != nil {
		return nil, fmt.Errorf("list process history: %w", err)
	}
	return history, nil
}

func insertHistory(ctx context.Context, tx *sqlx.Tx, history *models.ProcessStageHistory) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO process_stage_history (id, process_id, from_stage, to_stage, note, changed_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, history.ID, history.ProcessID, history.FromStage, history.ToStage, history.Note,
		history.ChangedByID, history.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stage history: %w", err)
	}
	return nil
}
