package http

import (
	"github.com/empreweb/empreweb-backend/internal/content/service"
	"github.com/empreweb/empreweb-backend/internal/logging"
)

type Handler struct {
	content *service.ContentService
	log     logging.Logger
}

func New(content *service.ContentService, log logging.Logger) *Handler {
	return &Handler{
		content: content,
		log:     log.With("component", "content_http"),
	}
}

type deleteResponse struct {
	OK      bool `json:"ok"`
	Deleted bool `json:"deleted"`
}

type contactResponse struct {
	Success bool `json:"success"`
}
