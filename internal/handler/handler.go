package handler

import (
	"net/http"

	"appakabar/backend/internal/hub"
	"appakabar/backend/internal/store"
	apperrors "appakabar/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

var (
	relationships *store.Store
	events        *hub.Hub
)

// Init wires the handlers to their collaborators. Must be called once
// before the router starts serving.
func Init(s *store.Store, h *hub.Hub) {
	relationships = s
	events = h
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// respondError maps a typed domain error to its HTTP status. Untyped errors
// become a 500 with a generic message so internals never leak.
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		c.JSON(appErr.Code.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
