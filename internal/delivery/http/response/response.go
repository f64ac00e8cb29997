package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key carrying the request ID. It lives here
// so the middleware that writes it and the replies that echo it share one
// definition.
const RequestIDKey = "RequestID"

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// MessageResponse is the JSON shape of an accepted submission.
type MessageResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Message sends a success reply with a server-assigned timestamp.
func Message(c *gin.Context, code int, message string, timestamp time.Time) {
	c.JSON(code, MessageResponse{
		Message:   message,
		Timestamp: timestamp,
	})
}

// Error sends an error reply. detail is only populated outside production.
func Error(c *gin.Context, code int, message string, detail string) {
	reqID, _ := c.Get(RequestIDKey)
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, ErrorResponse{
		Error:     message,
		Detail:    detail,
		RequestID: idStr,
	})
}
