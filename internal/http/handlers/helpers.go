package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/topogame/TalentFlow-sub001/internal/http/middleware"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
)

var errUserNotInContext = errors.New("user not found in context")

// currentUserID extracts the authenticated user ID from the context.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, errUserNotInContext
	}

	userID, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, errUserNotInContext
	}

	return userID, nil
}

// respondError writes a typed AppError with its mapped status, or a masked
// 500 for anything else.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message, "code": string(appErr.Code)}
		if appErr.Reason != "" {
			body["reason"] = appErr.Reason
		}
		c.JSON(appErr.HTTPStatus, body)
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "internal server error",
		"code":  string(apperror.ErrCodeInternal),
	})
}
