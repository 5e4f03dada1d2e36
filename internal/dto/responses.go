package dto

import "github.com/topogame/TalentFlow-sub001/internal/models"

// LoginResponse carries the authenticated user together with a token pair.
type LoginResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenResponse is returned by the refresh endpoint.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateProcessResponse wraps a created process with non-blocking warnings,
// such as a candidate previously rejected by the same firm.
type CreateProcessResponse struct {
	Process  *models.Process `json:"process"`
	Warnings []string        `json:"warnings"`
}

// ErrorResponse is the uniform error body produced by the handlers.
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`
}
