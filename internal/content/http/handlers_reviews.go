package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

func (h *Handler) ListReviews(c *gin.Context) {
	list, err := h.content.ListReviews(c.Request.Context())
	if err != nil {
		h.writeError(c, "list reviews", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req domain.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	r, err := h.content.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, "create review", err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	deleted, err := h.content.DeleteReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "delete review", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{OK: true, Deleted: deleted})
}
