package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/delivery/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminEngine(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/admin/messages", middleware.AdminAuth(secret), func(c *gin.Context) {
		c.String(http.StatusOK, "data")
	})
	return r
}

func doAdminRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuth(t *testing.T) {
	t.Run("Should reject a missing Authorization header", func(t *testing.T) {
		w := doAdminRequest(newAdminEngine("s3cret"), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "data")
	})

	t.Run("Should reject a non-bearer header", func(t *testing.T) {
		w := doAdminRequest(newAdminEngine("s3cret"), "Basic s3cret")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a wrong token", func(t *testing.T) {
		w := doAdminRequest(newAdminEngine("s3cret"), "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "data")
	})

	t.Run("Should reject everything when no secret is configured", func(t *testing.T) {
		w := doAdminRequest(newAdminEngine(""), "Bearer ")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should admit the configured token", func(t *testing.T) {
		w := doAdminRequest(newAdminEngine("s3cret"), "Bearer s3cret")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "data", w.Body.String())
	})
}
