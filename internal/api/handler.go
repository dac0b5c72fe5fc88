package api

import (
	"github.com/ogrande/tower-cards/internal/service"
)

// Handler groups the HTTP handlers for the command surface. The chat
// dispatch layer maps platform user IDs onto the playerID path parameter.
type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}
