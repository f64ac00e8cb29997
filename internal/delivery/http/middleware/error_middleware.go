package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the gin context onto the wire format.
// Internal detail reaches the client only when exposeDetail is true
// (non-production deployments); production callers get an opaque message.
func ErrorHandler(exposeDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// Client-facing errors (400/401/429/503) are reported precisely;
		// anything internal collapses to an opaque 500 below.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code != http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, "")
			return
		}

		// Server fault: log the real cause, report an opaque one. An
		// AppError's message is the static "Internal Server Error"; the
		// wrapped error is what the operator needs.
		cause := err
		if appErr != nil && appErr.Err != nil {
			cause = appErr.Err
		}

		reqID, _ := c.Get(response.RequestIDKey)
		logger.Log.Error("internal server error",
			"error", cause.Error(),
			"path", c.FullPath(),
			"request_id", reqID,
		)

		detail := ""
		if exposeDetail {
			detail = cause.Error()
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", detail)
	}
}
