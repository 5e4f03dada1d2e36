package models

import (
	"time"

	"github.com/google/uuid"
)

// Match category names, fixed order. The first four are rule-scored, the last
// three come from the AI evaluation.
const (
	MatchCategoryExperience = "experience"
	MatchCategorySalary     = "salary"
	MatchCategoryLocation   = "location"
	MatchCategoryEducation  = "education"
	MatchCategorySkills     = "skills"
	MatchCategoryLanguage   = "language"
	MatchCategorySector     = "sector"
)

// MatchCategoryScore is one scored dimension of a candidate-position match.
type MatchCategoryScore struct {
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// CandidateMatchResult is the ephemeral per-candidate outcome of a match run.
// It is never persisted; fitness_score on a process is a snapshot taken by the
// consumer at process-creation time.
type CandidateMatchResult struct {
	CandidateID          uuid.UUID            `json:"candidate_id"`
	FullName             string               `json:"full_name"`
	CurrentTitle         *string              `json:"current_title,omitempty"`
	City                 *string              `json:"city,omitempty"`
	TotalExperienceYears *float64             `json:"total_experience_years,omitempty"`
	OverallScore         float64              `json:"overall_score"`
	Categories           []MatchCategoryScore `json:"categories"`
}

// MatchRun is the full result of one matching invocation for a position.
type MatchRun struct {
	Candidates  []CandidateMatchResult `json:"candidates"`
	AIAvailable bool                   `json:"ai_available"`
	GeneratedAt time.Time              `json:"generated_at"`
}
