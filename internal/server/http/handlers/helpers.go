package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/usersnack/usersnack/internal/domain/errors"
	"github.com/usersnack/usersnack/internal/server/http/middleware"
	"github.com/usersnack/usersnack/internal/usecase"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// pathID validates the id path parameter before it reaches storage.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !usecase.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Id"})
		return "", false
	}
	return id, true
}

// handleDomainError maps domain errors to HTTP responses. Anything outside
// the known taxonomy is a 500 with no detail leaked to the client.
func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrInvalidReference),
		errors.Is(err, domainErrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
