package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

func (h *Handler) ListServices(c *gin.Context) {
	list, err := h.content.ListServices(c.Request.Context())
	if err != nil {
		h.writeError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req domain.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc, err := h.content.CreateService(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, "create service", err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	var req domain.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc, err := h.content.UpdateService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, "update service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	deleted, err := h.content.DeleteService(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "delete service", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{OK: true, Deleted: deleted})
}
