package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is a person in the agency's talent pool.
type Candidate struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	FullName             string    `db:"full_name" json:"full_name"`
	Status               string    `db:"status" json:"status"`
	TotalExperienceYears *float64  `db:"total_experience_years" json:"total_experience_years,omitempty"`
	SalaryExpectation    *float64  `db:"salary_expectation" json:"salary_expectation,omitempty"`
	SalaryCurrency       *string   `db:"salary_currency" json:"salary_currency,omitempty"`
	City                 *string   `db:"city" json:"city,omitempty"`
	IsRemoteEligible     bool      `db:"is_remote_eligible" json:"is_remote_eligible"`
	IsHybridEligible     bool      `db:"is_hybrid_eligible" json:"is_hybrid_eligible"`
	EducationLevel       *string   `db:"education_level" json:"education_level,omitempty"`
	CurrentTitle         *string   `db:"current_title" json:"current_title,omitempty"`
	CurrentSector        *string   `db:"current_sector" json:"current_sector,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`

	Languages []CandidateLanguage `json:"languages,omitempty"`
}

// CandidateLanguage is one spoken language of a candidate. Ordering is by
// the sort_order column, strongest language first.
type CandidateLanguage struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CandidateID uuid.UUID `db:"candidate_id" json:"candidate_id"`
	Language    string    `db:"language" json:"language"`
	Level       string    `db:"level" json:"level"`
	SortOrder   int       `db:"sort_order" json:"sort_order"`
}
