package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/usecase"
)

// OrderExtraRequest references one extra on an order item. The wire form is
// either a bare id string or an object with an explicit quantity, so both
// shapes decode into the same struct.
type OrderExtraRequest struct {
	ExtraID  string `json:"extra_id"`
	Quantity int    `json:"quantity"`
}

func (r *OrderExtraRequest) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ExtraID = id
		r.Quantity = 1
		return nil
	}

	type alias OrderExtraRequest
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.ExtraID == "" {
		return errors.New("extra reference must be an id string or an object with extra_id")
	}
	if obj.Quantity <= 0 {
		obj.Quantity = 1
	}
	*r = OrderExtraRequest(obj)
	return nil
}

type OrderItemRequest struct {
	PizzaID  string              `json:"pizza_id" binding:"required"`
	Quantity int                 `json:"quantity"`
	Extras   []OrderExtraRequest `json:"extras"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required,min=1,max=100"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerPhone   *string            `json:"customer_phone" binding:"omitempty,min=10,max=20"`
	CustomerAddress string             `json:"customer_address" binding:"required,min=1,max=500"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// ToParams converts the request into use case input.
func (r *CreateOrderRequest) ToParams() usecase.CreateOrderParams {
	items := make([]usecase.OrderItemParams, 0, len(r.Items))
	for _, it := range r.Items {
		extras := make([]usecase.ExtraRequest, 0, len(it.Extras))
		for _, ex := range it.Extras {
			extras = append(extras, usecase.ExtraRequest{ID: ex.ExtraID, Quantity: ex.Quantity})
		}
		items = append(items, usecase.OrderItemParams{
			PizzaID:  it.PizzaID,
			Quantity: it.Quantity,
			Extras:   extras,
		})
	}
	return usecase.CreateOrderParams{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Items:           items,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderExtraResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderItemResponse struct {
	PizzaID    string               `json:"pizza_id"`
	PizzaName  string               `json:"pizza_name"`
	PizzaPrice float64              `json:"pizza_price"`
	Extras     []OrderExtraResponse `json:"extras"`
	Quantity   int                  `json:"quantity"`
	ItemTotal  float64              `json:"item_total"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   *string             `json:"customer_phone,omitempty"`
	CustomerAddress string              `json:"customer_address"`
	Items           []OrderItemResponse `json:"items"`
	TotalPrice      float64             `json:"total_price"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func NewOrderResponse(o *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		extras := make([]OrderExtraResponse, 0, len(it.Extras))
		for _, ex := range it.Extras {
			extras = append(extras, OrderExtraResponse{ID: ex.ID, Name: ex.Name, Price: ex.Price})
		}
		items = append(items, OrderItemResponse{
			PizzaID:    it.PizzaID,
			PizzaName:  it.PizzaName,
			PizzaPrice: it.PizzaPrice,
			Extras:     extras,
			Quantity:   it.Quantity,
			ItemTotal:  it.ItemTotal,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Items:           items,
		TotalPrice:      o.TotalAmount,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
