package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usersnack/usersnack/internal/domain/repository"
	"github.com/usersnack/usersnack/internal/server/http/dto"
	"github.com/usersnack/usersnack/internal/usecase"
)

// UserHandler manages customer account endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.facade.RegisterUser(c.Request.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.facade.User(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetByEmail handles GET /api/users/email/:email.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	if !usecase.ValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	user, err := h.facade.UserByEmail(c.Request.Context(), email)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	params := dto.ParsePageParams(c)
	users, total, err := h.facade.Users(c.Request.Context(), params.Skip(), params.Limit)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(dto.NewUserResponses(users), total, params))
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), id, repository.UserUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
