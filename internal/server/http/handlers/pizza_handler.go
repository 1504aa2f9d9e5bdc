package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usersnack/usersnack/internal/domain/repository"
	"github.com/usersnack/usersnack/internal/server/http/dto"
	"github.com/usersnack/usersnack/internal/usecase"
)

// PizzaHandler manages pizza catalog endpoints.
type PizzaHandler struct {
	facade CatalogFacade
}

// NewPizzaHandler constructs PizzaHandler.
func NewPizzaHandler(facade CatalogFacade) *PizzaHandler {
	return &PizzaHandler{facade: facade}
}

// Create handles POST /api/pizzas.
func (h *PizzaHandler) Create(c *gin.Context) {
	var req dto.CreatePizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pizza, err := h.facade.CreatePizza(c.Request.Context(), usecase.CreatePizzaParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Ingredients: req.Ingredients,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPizzaResponse(pizza))
}

// Get handles GET /api/pizzas/:id.
func (h *PizzaHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	pizza, err := h.facade.Pizza(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPizzaResponse(pizza))
}

// List handles GET /api/pizzas.
func (h *PizzaHandler) List(c *gin.Context) {
	params := dto.ParsePageParams(c)
	pizzas, total, err := h.facade.Pizzas(c.Request.Context(), params.Skip(), params.Limit)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(dto.NewPizzaResponses(pizzas), total, params))
}

// Update handles PUT /api/pizzas/:id.
func (h *PizzaHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdatePizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pizza, err := h.facade.UpdatePizza(c.Request.Context(), id, repository.PizzaUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Ingredients: req.Ingredients,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPizzaResponse(pizza))
}

// Delete handles DELETE /api/pizzas/:id.
func (h *PizzaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeletePizza(c.Request.Context(), id); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
