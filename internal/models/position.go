package models

import (
	"time"

	"github.com/google/uuid"
)

// Position is an open role at a firm. Matching is only permitted while the
// status is open.
type Position struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	FirmID               uuid.UUID `db:"firm_id" json:"firm_id"`
	Title                string    `db:"title" json:"title"`
	Department           *string   `db:"department" json:"department,omitempty"`
	Status               string    `db:"status" json:"status"`
	MinExperienceYears   *float64  `db:"min_experience_years" json:"min_experience_years,omitempty"`
	SalaryMin            *float64  `db:"salary_min" json:"salary_min,omitempty"`
	SalaryMax            *float64  `db:"salary_max" json:"salary_max,omitempty"`
	SalaryCurrency       *string   `db:"salary_currency" json:"salary_currency,omitempty"`
	City                 *string   `db:"city" json:"city,omitempty"`
	WorkModel            string    `db:"work_model" json:"work_model"`
	EducationRequirement *string   `db:"education_requirement" json:"education_requirement,omitempty"`
	RequiredSkills       *string   `db:"required_skills" json:"required_skills,omitempty"`
	LanguageRequirement  *string   `db:"language_requirement" json:"language_requirement,omitempty"`
	SectorPreference     *string   `db:"sector_preference" json:"sector_preference,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}
