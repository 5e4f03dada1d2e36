package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/topogame/TalentFlow-sub001/internal/models"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
	"github.com/topogame/TalentFlow-sub001/internal/repository/common"
)

type CandidateRepository struct {
	db *sqlx.DB
}

func NewCandidateRepository(db *sqlx.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	return common.GetByID[models.Candidate](ctx, r.db, "candidates", id, apperror.ErrCandidateNotFound)
}

// ListActiveExcluding returns active candidates whose id is not in excluded,
// languages attached. excluded may be empty.
func (r *CandidateRepository) ListActiveExcluding(ctx context.Context, excluded []uuid.UUID) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.SelectContext(ctx, &candidates, `
		SELECT * FROM candidates
		WHERE status = $1 AND NOT (id = ANY($2))
		ORDER BY created_at
	`, models.CandidateStatusActive, pq.Array(excluded))
	if err != nil {
		return nil, fmt.Errorf("list active candidates: %w", err)
	}

	if len(candidates) == 0 {
		return candidates, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	var languages []models.CandidateLanguage
	err = r.db.SelectContext(ctx, &languages, `
		SELECT * FROM candidate_languages
		WHERE candidate_id = ANY($1)
		ORDER BY candidate_id, sort_order
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list candidate languages: %w", err)
	}

	byCandidate := make(map[uuid.UUID][]models.CandidateLanguage, len(candidates))
	for _, l := range languages {
		byCandidate[l.CandidateID] = append(byCandidate[l.CandidateID], l)
	}
	for i := range candidates {
		candidates[i].Languages = byCandidate[candidates[i].ID]
	}

	return candidates, nil
}
