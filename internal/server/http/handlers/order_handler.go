package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.ToParams())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	params := dto.ParsePageParams(c)
	orders, total, err := h.facade.Orders(c.Request.Context(), params.Skip(), params.Limit)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(dto.NewOrderResponses(orders), total, params))
}

// ListByUser handles GET /api/users/:id/orders.
func (h *OrderHandler) ListByUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	orders, err := h.facade.OrdersByUser(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
