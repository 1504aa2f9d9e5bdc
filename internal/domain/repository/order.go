package repository

import (
	"context"

	"github.com/usersnack/usersnack/internal/domain/model"
)

// OrderRepository persists order aggregates. Listings are ordered by creation
// time descending. SetStatus changes any status to any other, bumping the
// updated timestamp; an unknown id yields ErrNotFound.
type OrderRepository interface {
	Insert(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, skip, limit int) ([]model.Order, int, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}
