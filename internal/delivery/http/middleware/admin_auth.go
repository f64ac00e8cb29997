package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"portfolio-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards admin routes with a static bearer secret. An unconfigured
// secret rejects every request; the comparison is constant-time.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", "")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			response.Error(c, http.StatusUnauthorized, "Invalid token", "")
			c.Abort()
			return
		}

		c.Next()
	}
}
