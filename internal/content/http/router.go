package http

import "github.com/gin-gonic/gin"

// Register mounts the content routes; requireAdmin guards every mutation except public reviews and contact.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("/servicios", h.ListServices)
	rg.POST("/servicios", requireAdmin, h.CreateService)
	rg.PUT("/servicios/:id", requireAdmin, h.UpdateService)
	rg.DELETE("/servicios/:id", requireAdmin, h.DeleteService)

	rg.GET("/resenas", h.ListReviews)
	rg.POST("/resenas", h.CreateReview)
	rg.DELETE("/resenas/:id", requireAdmin, h.DeleteReview)

	rg.POST("/contacto", h.SubmitContact)
}
