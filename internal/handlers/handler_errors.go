package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrRateNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrReferenced):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...}. Client errors carry the service message; server errors
// only say which action failed.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to " + action})
		return
	}
	logger.Warn("Request rejected while trying to "+action, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindError answers a request whose body or query could not be bound.
func bindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// uuidParam reads a path parameter that must be a UUID and answers 400 otherwise.
func uuidParam(c *gin.Context, logger *slog.Logger, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		logger.Warn("Invalid id in path", slog.String("param", name), slog.String("value", id))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return "", false
	}
	return id, true
}
