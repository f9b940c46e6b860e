package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

// SubmitContact answers {success:true} once the submission is stored, whatever the notifier does.
func (h *Handler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.content.SubmitContact(c.Request.Context(), req); err != nil {
		h.writeError(c, "submit contact", err)
		return
	}
	c.JSON(http.StatusOK, contactResponse{Success: true})
}
