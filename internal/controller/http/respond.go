package http

import (
	"errors"
	"net/http"

	"cliptube/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Anything outside the
// known taxonomy is a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation), errors.Is(err, entity.ErrSelfSubscription):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrUnauthenticated),
		errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
