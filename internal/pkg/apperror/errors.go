package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeBusinessRule ErrorCode = "BUSINESS_RULE"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeUpstream     ErrorCode = "UPSTREAM_ERROR"
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// AppError is the typed failure every service operation returns. Reason is a
// machine-readable discriminator for callers that need to distinguish failures
// sharing a code (e.g. the two CONFLICT cases).
type AppError struct {
	Code       ErrorCode
	Reason     string
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func NewWithReason(code ErrorCode, reason, message string) *AppError {
	e := New(code, message)
	e.Reason = reason
	return e
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeBusinessRule:
		return http.StatusUnprocessableEntity
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}

func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeConflict
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeValidation
}

// HasReason reports whether err is an AppError carrying the given reason.
func HasReason(err error, reason string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Reason == reason
}

// Reasons used by the process and matching subsystems.
const (
	ReasonPositionClosed   = "POSITION_CLOSED"
	ReasonDuplicateProcess = "DUPLICATE_PROCESS"
	ReasonSameStage        = "SAME_STAGE"
)

var (
	ErrPositionNotFound  = New(ErrCodeNotFound, "position not found")
	ErrCandidateNotFound = New(ErrCodeNotFound, "candidate not found")
	ErrFirmNotFound      = New(ErrCodeNotFound, "firm not found")
	ErrProcessNotFound   = New(ErrCodeNotFound, "process not found")
	ErrUserNotFound      = New(ErrCodeNotFound, "user not found")

	ErrPositionClosed   = NewWithReason(ErrCodeBusinessRule, ReasonPositionClosed, "position is not open for matching")
	ErrDuplicateProcess = NewWithReason(ErrCodeConflict, ReasonDuplicateProcess, "an active process already exists for this candidate, firm and position")
	ErrSameStage        = NewWithReason(ErrCodeConflict, ReasonSameStage, "process is already in the requested stage")

	ErrUnauthorized       = New(ErrCodeUnauthorized, "authorization required")
	ErrInvalidCredentials = New(ErrCodeUnauthorized, "invalid credentials")
)
