package test

import (
	"context"
	"time"

	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/domain/repository"
	"github.com/usersnack/usersnack/internal/usecase"
)

// AuthFacadeStub simulates token issuing for HTTP layer tests.
type AuthFacadeStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	TTLVal  time.Duration
}

func (s AuthFacadeStub) IssueToken(userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

func (s AuthFacadeStub) TokenTTL() time.Duration {
	if s.TTLVal != 0 {
		return s.TTLVal
	}
	return 30 * time.Minute
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CreatePizzaFn func(context.Context, usecase.CreatePizzaParams) (*model.Pizza, error)
	PizzaFn       func(context.Context, string) (*model.Pizza, error)
	PizzasFn      func(context.Context, int, int) ([]model.Pizza, int, error)
	UpdatePizzaFn func(context.Context, string, repository.PizzaUpdate) (*model.Pizza, error)
	DeletePizzaFn func(context.Context, string) error

	CreateExtraFn func(context.Context, usecase.CreateExtraParams) (*model.Extra, error)
	ExtraFn       func(context.Context, string) (*model.Extra, error)
	ExtrasFn      func(context.Context, int, int) ([]model.Extra, int, error)
	UpdateExtraFn func(context.Context, string, repository.ExtraUpdate) (*model.Extra, error)
	DeleteExtraFn func(context.Context, string) error
}

func (s CatalogFacadeStub) CreatePizza(ctx context.Context, p usecase.CreatePizzaParams) (*model.Pizza, error) {
	if s.CreatePizzaFn != nil {
		return s.CreatePizzaFn(ctx, p)
	}
	return &model.Pizza{Name: p.Name, Price: p.Price, Ingredients: p.Ingredients, Available: true}, nil
}

func (s CatalogFacadeStub) Pizza(ctx context.Context, id string) (*model.Pizza, error) {
	if s.PizzaFn != nil {
		return s.PizzaFn(ctx, id)
	}
	return &model.Pizza{ID: id, Available: true}, nil
}

func (s CatalogFacadeStub) Pizzas(ctx context.Context, skip, limit int) ([]model.Pizza, int, error) {
	if s.PizzasFn != nil {
		return s.PizzasFn(ctx, skip, limit)
	}
	return []model.Pizza{}, 0, nil
}

func (s CatalogFacadeStub) UpdatePizza(ctx context.Context, id string, update repository.PizzaUpdate) (*model.Pizza, error) {
	if s.UpdatePizzaFn != nil {
		return s.UpdatePizzaFn(ctx, id, update)
	}
	return &model.Pizza{ID: id, Available: true}, nil
}

func (s CatalogFacadeStub) DeletePizza(ctx context.Context, id string) error {
	if s.DeletePizzaFn != nil {
		return s.DeletePizzaFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) CreateExtra(ctx context.Context, p usecase.CreateExtraParams) (*model.Extra, error) {
	if s.CreateExtraFn != nil {
		return s.CreateExtraFn(ctx, p)
	}
	return &model.Extra{Name: p.Name, Price: p.Price, Available: true}, nil
}

func (s CatalogFacadeStub) Extra(ctx context.Context, id string) (*model.Extra, error) {
	if s.ExtraFn != nil {
		return s.ExtraFn(ctx, id)
	}
	return &model.Extra{ID: id, Available: true}, nil
}

func (s CatalogFacadeStub) Extras(ctx context.Context, skip, limit int) ([]model.Extra, int, error) {
	if s.ExtrasFn != nil {
		return s.ExtrasFn(ctx, skip, limit)
	}
	return []model.Extra{}, 0, nil
}

func (s CatalogFacadeStub) UpdateExtra(ctx context.Context, id string, update repository.ExtraUpdate) (*model.Extra, error) {
	if s.UpdateExtraFn != nil {
		return s.UpdateExtraFn(ctx, id, update)
	}
	return &model.Extra{ID: id, Available: true}, nil
}

func (s CatalogFacadeStub) DeleteExtra(ctx context.Context, id string) error {
	if s.DeleteExtraFn != nil {
		return s.DeleteExtraFn(ctx, id)
	}
	return nil
}

// UserFacadeStub simulates account operations.
type UserFacadeStub struct {
	RegisterFn    func(context.Context, usecase.RegisterParams) (*model.User, error)
	UserFn        func(context.Context, string) (*model.User, error)
	UserByEmailFn func(context.Context, string) (*model.User, error)
	UsersFn       func(context.Context, int, int) ([]model.User, int, error)
	UpdateFn      func(context.Context, string, repository.UserUpdate) (*model.User, error)
	DeleteFn      func(context.Context, string) error
}

func (s UserFacadeStub) RegisterUser(ctx context.Context, p usecase.RegisterParams) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, p)
	}
	return &model.User{Name: p.Name, Email: p.Email, Active: true}, nil
}

func (s UserFacadeStub) User(ctx context.Context, id string) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Active: true}, nil
}

func (s UserFacadeStub) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.UserByEmailFn != nil {
		return s.UserByEmailFn(ctx, email)
	}
	return &model.User{Email: email, Active: true}, nil
}

func (s UserFacadeStub) Users(ctx context.Context, skip, limit int) ([]model.User, int, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, skip, limit)
	}
	return []model.User{}, 0, nil
}

func (s UserFacadeStub) UpdateUser(ctx context.Context, id string, update repository.UserUpdate) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	return &model.User{ID: id, Active: true}, nil
}

func (s UserFacadeStub) DeleteUser(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, usecase.CreateOrderParams) (*model.Order, error)
	OrderFn        func(context.Context, string) (*model.Order, error)
	OrdersFn       func(context.Context, int, int) ([]model.Order, int, error)
	OrdersByUserFn func(context.Context, string) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
}

func (s OrderFacadeStub) PlaceOrder(ctx context.Context, p usecase.CreateOrderParams) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, p)
	}
	return &model.Order{CustomerName: p.CustomerName, CustomerEmail: p.CustomerEmail, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, skip, limit int) ([]model.Order, int, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, skip, limit)
	}
	return []model.Order{}, 0, nil
}

func (s OrderFacadeStub) OrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.OrdersByUserFn != nil {
		return s.OrdersByUserFn(ctx, userID)
	}
	return []model.Order{}, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

// SnackFacadeStub aggregates facade dependencies for HTTP layer tests.
type SnackFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	UserFacadeStub
	OrderFacadeStub
}
