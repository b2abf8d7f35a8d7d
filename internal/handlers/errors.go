package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// MsgCoreUnavailable is returned when the engine reports a storage or crypto fault.
const MsgCoreUnavailable = "Unable to process transaction. Core banking system unavailable."

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsFatal(err):
		logger.Error("Core banking fault", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Core banking system unavailable"})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseLimit reads the optional ?limit= query parameter. Absent means no limit.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}
