package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/topogame/TalentFlow-sub001/internal/logger"
	"github.com/topogame/TalentFlow-sub001/internal/pkg/apperror"
)

// ErrorHandler maps errors attached to the gin context to HTTP responses.
// Internal errors are masked; typed errors keep their code and reason.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()

		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Error("Request error")
		}

		var appErr *apperror.AppError
		if errors.As(err.Err, &appErr) {
			body := gin.H{"error": appErr.Message, "code": string(appErr.Code)}
			if appErr.Reason != "" {
				body["reason"] = appErr.Reason
			}
			c.JSON(appErr.HTTPStatus, body)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
			"code":  string(apperror.ErrCodeInternal),
		})
	}
}
