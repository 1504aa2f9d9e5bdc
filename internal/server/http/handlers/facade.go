package handlers

import (
	"context"
	"time"

	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/domain/repository"
	"github.com/usersnack/usersnack/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	TokenTTL() time.Duration
}

// CatalogFacade encapsulates pizza and extra catalog operations exposed via HTTP.
type CatalogFacade interface {
	CreatePizza(ctx context.Context, p usecase.CreatePizzaParams) (*model.Pizza, error)
	Pizza(ctx context.Context, id string) (*model.Pizza, error)
	Pizzas(ctx context.Context, skip, limit int) ([]model.Pizza, int, error)
	UpdatePizza(ctx context.Context, id string, update repository.PizzaUpdate) (*model.Pizza, error)
	DeletePizza(ctx context.Context, id string) error

	CreateExtra(ctx context.Context, p usecase.CreateExtraParams) (*model.Extra, error)
	Extra(ctx context.Context, id string) (*model.Extra, error)
	Extras(ctx context.Context, skip, limit int) ([]model.Extra, int, error)
	UpdateExtra(ctx context.Context, id string, update repository.ExtraUpdate) (*model.Extra, error)
	DeleteExtra(ctx context.Context, id string) error
}

// UserFacade provides customer account operations.
type UserFacade interface {
	RegisterUser(ctx context.Context, p usecase.RegisterParams) (*model.User, error)
	User(ctx context.Context, id string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	Users(ctx context.Context, skip, limit int) ([]model.User, int, error)
	UpdateUser(ctx context.Context, id string, update repository.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, p usecase.CreateOrderParams) (*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	Orders(ctx context.Context, skip, limit int) ([]model.Order, int, error)
	OrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// SnackFacade aggregates the full set of operations used across handlers.
type SnackFacade interface {
	AuthFacade
	CatalogFacade
	UserFacade
	OrderFacade
}
