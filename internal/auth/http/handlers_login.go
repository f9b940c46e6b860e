package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empreweb/empreweb-backend/internal/auth/domain"
)

// Login returns {token} for the right admin password and a bare 401 otherwise.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// an unreadable body is just a wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token})
}
