package model

import "time"

// OrderStatus describes the fulfilment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known status value. Transitions between
// statuses are deliberately unconstrained.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ExtraSnapshot captures an extra's identity and price at order time.
// JSON tags define the persisted shape of the embedded items document.
type ExtraSnapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderItem is one priced line of an order. Name and price fields are
// snapshots: later catalog edits never change them.
type OrderItem struct {
	PizzaID    string          `json:"pizza_id"`
	PizzaName  string          `json:"pizza_name"`
	PizzaPrice float64         `json:"pizza_price"`
	Extras     []ExtraSnapshot `json:"extras"`
	Quantity   int             `json:"quantity"`
	ItemTotal  float64         `json:"item_total"`
}

// Order is the aggregate written once at checkout. Only Status and UpdatedAt
// change afterwards. Customer fields are copied from the request, not from
// the resolved user record.
type Order struct {
	ID              string
	UserID          string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CustomerAddress string
	Items           []OrderItem
	TotalAmount     float64
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
