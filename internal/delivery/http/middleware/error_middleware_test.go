package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorEngine(exposeDetail bool) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(exposeDetail))
	r.GET("/store-fault", func(c *gin.Context) {
		c.Error(apperror.Internal(errors.New("pg: connection refused")))
	})
	r.GET("/plain-fault", func(c *gin.Context) {
		c.Error(errors.New("template execution failed"))
	})
	r.GET("/client-fault", func(c *gin.Context) {
		c.Error(apperror.BadRequest("name is required"))
	})
	return r
}

func doErrorRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestErrorHandlerInternalFaults(t *testing.T) {
	t.Run("Should expose the wrapped cause as detail outside production", func(t *testing.T) {
		w := doErrorRequest(newErrorEngine(true), "/store-fault")

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "An unexpected error occurred. Please try again later.", body["error"])
		// The detail carries the root cause, not the opaque envelope message
		assert.Equal(t, "pg: connection refused", body["detail"])
	})

	t.Run("Should expose a bare error as detail outside production", func(t *testing.T) {
		w := doErrorRequest(newErrorEngine(true), "/plain-fault")

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "template execution failed", body["detail"])
	})

	t.Run("Should hide all detail in production", func(t *testing.T) {
		w := doErrorRequest(newErrorEngine(false), "/store-fault")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
		assert.NotContains(t, w.Body.String(), "detail")
	})

	t.Run("Should report client errors precisely", func(t *testing.T) {
		w := doErrorRequest(newErrorEngine(false), "/client-fault")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name is required")
	})
}

func TestErrorHandlerEchoesRequestID(t *testing.T) {
	w := doErrorRequest(newErrorEngine(true), "/store-fault")

	requestID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, requestID, body["requestId"])
}
