package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usersnack/usersnack/internal/server/http/dto"
	"github.com/usersnack/usersnack/internal/usecase"
)

// AuthHandler issues bearer tokens for known users.
type AuthHandler struct {
	auth  AuthFacade
	users UserFacade
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth AuthFacade, users UserFacade) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Token handles POST /api/auth/token. The user must exist; the token binds
// to the user id and expires after the configured TTL.
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !usecase.ValidID(req.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Id"})
		return
	}

	if _, err := h.users.User(c.Request.Context(), req.UserID); err != nil {
		handleDomainError(c, err)
		return
	}

	token, err := h.auth.IssueToken(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.auth.TokenTTL().Seconds()),
	})
}
