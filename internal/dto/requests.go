package dto

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateProcessRequest is the body of POST /processes.
type CreateProcessRequest struct {
	CandidateID  string   `json:"candidate_id" binding:"required,uuid"`
	FirmID       string   `json:"firm_id" binding:"required,uuid"`
	PositionID   string   `json:"position_id" binding:"required,uuid"`
	InitialStage string   `json:"initial_stage" binding:"required"`
	FitnessScore *float64 `json:"fitness_score,omitempty"`
	AssignedToID *string  `json:"assigned_to_id,omitempty" binding:"omitempty,uuid"`
	Note         *string  `json:"note,omitempty"`
}

// ChangeStageRequest is the body of PATCH /processes/:id/stage.
type ChangeStageRequest struct {
	Stage string  `json:"stage" binding:"required"`
	Note  *string `json:"note,omitempty"`
}
