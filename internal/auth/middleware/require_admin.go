package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empreweb/empreweb-backend/internal/auth"
)

// TokenVerifier is satisfied by service.AuthService.
type TokenVerifier interface {
	Verify(token string) error
}

// RequireAdmin rejects the request with 401 unless the Authorization header holds a valid admin token.
func RequireAdmin(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		if err := v.Verify(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Next()
	}
}
