package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/topogame/TalentFlow-sub001/internal/models"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
	"github.com/topogame/TalentFlow-sub001/internal/repository/common"
)

type FirmRepository struct {
	db *sqlx.DB
}

func NewFirmRepository(db *sqlx.DB) *FirmRepository {
	return &FirmRepository{db: db}
}

func (r *FirmRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Firm, error) {
	return common.GetByID[models.Firm](ctx, r.db, "firms", id, apperror.ErrFirmNotFound)
}
