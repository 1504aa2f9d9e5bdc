package repository

import (
	"context"

	"github.com/usersnack/usersnack/internal/domain/model"
)

// PizzaUpdate carries the mutable subset of a pizza; nil fields are left as is.
type PizzaUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Ingredients []string
	ImageURL    *string
}

// ExtraUpdate carries the mutable subset of an extra; nil fields are left as is.
type ExtraUpdate struct {
	Name  *string
	Price *float64
}

// CatalogRepository persists pizzas and extras.
//
// GetPizzaByID and GetExtraByID resolve soft-deleted records too: order-time
// pricing must still find a retired item referenced from a cart, and
// historical snapshots must stay displayable. Listing methods return only
// available records.
type CatalogRepository interface {
	CreatePizza(ctx context.Context, pizza *model.Pizza) (*model.Pizza, error)
	GetPizzaByID(ctx context.Context, id string) (*model.Pizza, error)
	ListPizzas(ctx context.Context, skip, limit int) ([]model.Pizza, int, error)
	UpdatePizza(ctx context.Context, id string, update PizzaUpdate) (*model.Pizza, error)
	SoftDeletePizza(ctx context.Context, id string) error

	CreateExtra(ctx context.Context, extra *model.Extra) (*model.Extra, error)
	GetExtraByID(ctx context.Context, id string) (*model.Extra, error)
	ListExtras(ctx context.Context, skip, limit int) ([]model.Extra, int, error)
	UpdateExtra(ctx context.Context, id string, update ExtraUpdate) (*model.Extra, error)
	SoftDeleteExtra(ctx context.Context, id string) error
}
