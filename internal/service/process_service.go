package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/topogame/TalentFlow-sub001/internal/goroutine"
	"github.com/topogame/TalentFlow-sub001/internal/logger"
	"github.com/topogame/TalentFlow-sub001/internal/models"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
)

// ProcessRepo is the storage contract of the process service. The two
// *WithHistory methods must be transactionally atomic: the stage write and the
// history row either both land or both roll back.
type ProcessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Process, error)
	FindActive(ctx context.Context, candidateID, firmID, positionID uuid.UUID) (*models.Process, error)
	HasNegativeHistory(ctx context.Context, candidateID, firmID uuid.UUID) (bool, error)
	CreateWithHistory(ctx context.Context, process *models.Process, history *models.ProcessStageHistory) error
	UpdateStageWithHistory(ctx context.Context, process *models.Process, history *models.ProcessStageHistory) error
	ListHistory(ctx context.Context, processID uuid.UUID) ([]models.ProcessStageHistory, error)
}

// CandidateLookup resolves candidate references during guard checks.
type CandidateLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
}

// FirmLookup resolves firm references during guard checks.
type FirmLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Firm, error)
}

// AuditRecorder is the fire-and-forget observability sink. Failures are
// contained by the service and never surface to the business transaction.
type AuditRecorder interface {
	Record(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, changes interface{}) error
}

// StageNotifier pushes real-time events to a consultant. Best-effort.
type StageNotifier interface {
	BroadcastToUser(userID uuid.UUID, event string, data interface{}) error
}

// WarningNegativeHistory flags a candidate previously rejected by the firm.
const WarningNegativeHistory = "NEGATIVE_HISTORY"

const auditTimeout = 5 * time.Second

// ProcessService owns the process lifecycle: creation guard and the stage
// state machine with its append-only history.
type ProcessService struct {
	processes  ProcessRepo
	candidates CandidateLookup
	firms      FirmLookup
	positions  PositionProvider
	audit      AuditRecorder
	notifier   StageNotifier
}

func NewProcessService(processes ProcessRepo, candidates CandidateLookup, firms FirmLookup, positions PositionProvider, audit AuditRecorder) *ProcessService {
	return &ProcessService{
		processes:  processes,
		candidates: candidates,
		firms:      firms,
		positions:  positions,
		audit:      audit,
	}
}

// SetNotifier attaches the real-time event sink (optional).
func (s *ProcessService) SetNotifier(notifier StageNotifier) {
	s.notifier = notifier
}

// CreateProcessInput carries everything the creation guard needs.
type CreateProcessInput struct {
	CandidateID  uuid.UUID
	FirmID       uuid.UUID
	PositionID   uuid.UUID
	InitialStage models.ProcessStage
	FitnessScore *float64
	AssignedToID *uuid.UUID
	Note         *string
	ActorID      uuid.UUID
}

// CreateProcess runs the pre-flight guard and creates the process together
// with its creation history row. Returned warnings are advisory and never
// block creation.
func (s *ProcessService) CreateProcess(ctx context.Context, in CreateProcessInput) (*models.Process, []string, error) {
	if !in.InitialStage.IsValid() {
		return nil, nil, apperror.New(apperror.ErrCodeValidation, "unknown pipeline stage: "+string(in.InitialStage))
	}

	if _, err := s.candidates.GetByID(ctx, in.CandidateID); err != nil {
		return nil, nil, err
	}
	if _, err := s.firms.GetByID(ctx, in.FirmID); err != nil {
		return nil, nil, err
	}
	position, err := s.positions.GetByID(ctx, in.PositionID)
	if err != nil {
		return nil, nil, err
	}
	if position.FirmID != in.FirmID {
		return nil, nil, apperror.New(apperror.ErrCodeValidation, "position does not belong to the given firm")
	}

	existing, err := s.processes.FindActive(ctx, in.CandidateID, in.FirmID, in.PositionID)
	if err != nil {
		return nil, nil, apperror.Wrap(err, apperror.ErrCodeDatabase, "could not check for an active process")
	}
	if existing != nil {
		return nil, nil, apperror.ErrDuplicateProcess
	}

	var warnings []string
	negative, err := s.processes.HasNegativeHistory(ctx, in.CandidateID, in.FirmID)
	if err != nil {
		return nil, nil, apperror.Wrap(err, apperror.ErrCodeDatabase, "could not check process history")
	}
	if negative {
		warnings = append(warnings, WarningNegativeHistory)
	}

	now := time.Now()
	process := &models.Process{
		ID:             uuid.New(),
		CandidateID:    in.CandidateID,
		FirmID:         in.FirmID,
		PositionID:     in.PositionID,
		Stage:          in.InitialStage,
		FitnessScore:   in.FitnessScore,
		AssignedToID:   in.AssignedToID,
		StageChangedAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.InitialStage.IsClosing() {
		process.ClosedAt = &now
	}

	history := &models.ProcessStageHistory{
		ID:          uuid.New(),
		ProcessID:   process.ID,
		FromStage:   nil, // creation event
		ToStage:     in.InitialStage,
		Note:        in.Note,
		ChangedByID: in.ActorID,
		CreatedAt:   now,
	}

	if err := s.processes.CreateWithHistory(ctx, process, history); err != nil {
		return nil, nil, apperror.Wrap(err, apperror.ErrCodeDatabase, "could not create process")
	}

	s.emitAudit(in.ActorID, "create", "process", process.ID, map[string]interface{}{
		"candidate_id": in.CandidateID,
		"firm_id":      in.FirmID,
		"position_id":  in.PositionID,
		"stage":        in.InitialStage,
	})
	s.notify(process.AssignedToID, "process.created", process)

	return process, warnings, nil
}

// ChangeStage moves a process to a new stage, maintaining closed_at and the
// append-only history. Entering positive/negative closes the process; any
// transition out of a closed process reopens it.
func (s *ProcessService) ChangeStage(ctx context.Context, processID uuid.UUID, newStage models.ProcessStage, note *string, actorID uuid.UUID) (*models.Process, error) {
	if !newStage.IsValid() {
		return nil, apperror.New(apperror.ErrCodeValidation, "unknown pipeline stage: "+string(newStage))
	}

	process, err := s.processes.GetByID(ctx, processID)
	if err != nil {
		return nil, err
	}

	if process.Stage == newStage {
		return nil, apperror.ErrSameStage
	}

	fromStage := process.Stage
	isClosing := newStage.IsClosing()
	isReopening := process.ClosedAt != nil && !isClosing

	now := time.Now()
	process.Stage = newStage
	process.StageChangedAt = now
	process.UpdatedAt = now
	switch {
	case isClosing:
		process.ClosedAt = &now
	case isReopening:
		process.ClosedAt = nil
	}

	history := &models.ProcessStageHistory{
		ID:          uuid.New(),
		ProcessID:   process.ID,
		FromStage:   &fromStage,
		ToStage:     newStage,
		Note:        note,
		ChangedByID: actorID,
		CreatedAt:   now,
	}

	if err := s.processes.UpdateStageWithHistory(ctx, process, history); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabase, "could not change process stage")
	}

	s.emitAudit(actorID, "stage_change", "process", process.ID, map[string]interface{}{
		"from_stage": fromStage,
		"to_stage":   newStage,
		"note":       note,
	})
	s.notify(process.AssignedToID, "process.stage_changed", map[string]interface{}{
		"process_id": process.ID,
		"from_stage": fromStage,
		"to_stage":   newStage,
	})

	return process, nil
}

// GetProcess returns one process.
func (s *ProcessService) GetProcess(ctx context.Context, id uuid.UUID) (*models.Process, error) {
	return s.processes.GetByID(ctx, id)
}

// ListHistory returns a process's transitions in creation order.
func (s *ProcessService) ListHistory(ctx context.Context, processID uuid.UUID) ([]models.ProcessStageHistory, error) {
	if _, err := s.processes.GetByID(ctx, processID); err != nil {
		return nil, err
	}
	return s.processes.ListHistory(ctx, processID)
}

// emitAudit dispatches an audit record on a detached context; failures are
// logged and dropped so observability never affects the business transaction.
func (s *ProcessService) emitAudit(actorID uuid.UUID, action, entityType string, entityID uuid.UUID, changes interface{}) {
	if s.audit == nil {
		return
	}
	goroutine.SafeGo(func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		if err := s.audit.Record(ctx, actorID, action, entityType, entityID, changes); err != nil && logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"action":    action,
				"entity_id": entityID,
			}).WithError(err).Warn("audit record failed")
		}
	})
}

// notify pushes an event to the assigned consultant, best-effort.
func (s *ProcessService) notify(userID *uuid.UUID, event string, data interface{}) {
	if s.notifier == nil || userID == nil {
		return
	}
	target := *userID
	goroutine.SafeGo(func() {
		if err := s.notifier.BroadcastToUser(target, event, data); err != nil && logger.Log != nil {
			logger.Log.WithError(err).Debug("stage notification failed")
		}
	})
}
