package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/topogame/TalentFlow-sub001/internal/models"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
	"github.com/topogame/TalentFlow-sub001/internal/repository/common"
)

type PositionRepository struct {
	db *sqlx.DB
}

func NewPositionRepository(db *sqlx.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	return common.GetByID[models.Position](ctx, r.db, "positions", id, apperror.ErrPositionNotFound)
}
