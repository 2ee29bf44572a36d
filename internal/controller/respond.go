package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/garimatiwari2004/jobeefie-backend/internal/apperrors"
	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is logged server-side and hidden behind a generic 500.
func respondError(c *gin.Context, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: trimSentinel(err, apperrors.ErrValidation)})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: trimSentinel(err, apperrors.ErrNotFound)})
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: trimSentinel(err, apperrors.ErrInvalidState)})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallbackMessage})
	}
}

// trimSentinel strips the "validation error: " style prefix so clients see the
// human part of the message only.
func trimSentinel(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
