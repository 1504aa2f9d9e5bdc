package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usersnack/usersnack/internal/domain/repository"
	"github.com/usersnack/usersnack/internal/server/http/dto"
	"github.com/usersnack/usersnack/internal/usecase"
)

// ExtraHandler manages extra catalog endpoints.
type ExtraHandler struct {
	facade CatalogFacade
}

// NewExtraHandler constructs ExtraHandler.
func NewExtraHandler(facade CatalogFacade) *ExtraHandler {
	return &ExtraHandler{facade: facade}
}

// Create handles POST /api/extras.
func (h *ExtraHandler) Create(c *gin.Context) {
	var req dto.CreateExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	extra, err := h.facade.CreateExtra(c.Request.Context(), usecase.CreateExtraParams{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewExtraResponse(extra))
}

// Get handles GET /api/extras/:id.
func (h *ExtraHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	extra, err := h.facade.Extra(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExtraResponse(extra))
}

// List handles GET /api/extras.
func (h *ExtraHandler) List(c *gin.Context) {
	params := dto.ParsePageParams(c)
	extras, total, err := h.facade.Extras(c.Request.Context(), params.Skip(), params.Limit)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(dto.NewExtraResponses(extras), total, params))
}

// Update handles PUT /api/extras/:id.
func (h *ExtraHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	extra, err := h.facade.UpdateExtra(c.Request.Context(), id, repository.ExtraUpdate{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExtraResponse(extra))
}

// Delete handles DELETE /api/extras/:id.
func (h *ExtraHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteExtra(c.Request.Context(), id); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
