package app

import (
	"context"
	"time"

	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/domain/repository"
	pkgAuth "github.com/usersnack/usersnack/internal/pkg/auth"
	"github.com/usersnack/usersnack/internal/usecase"
)

// SnackFacade aggregates the application's use cases behind one surface
// consumed by the HTTP layer.
type SnackFacade struct {
	catalog *usecase.CatalogUseCase
	users   *usecase.UserUseCase
	orders  *usecase.OrderUseCase
	tokens  pkgAuth.Strategy
}

func NewSnackFacade(catalog *usecase.CatalogUseCase, users *usecase.UserUseCase, orders *usecase.OrderUseCase, tokens pkgAuth.Strategy) *SnackFacade {
	return &SnackFacade{catalog: catalog, users: users, orders: orders, tokens: tokens}
}

func (f *SnackFacade) IssueToken(userID string) (string, error) {
	return f.tokens.IssueToken(userID)
}

func (f *SnackFacade) ParseToken(token string) (string, error) {
	return f.tokens.ParseToken(token)
}

func (f *SnackFacade) TokenTTL() time.Duration {
	return f.tokens.TTL()
}

func (f *SnackFacade) CreatePizza(ctx context.Context, p usecase.CreatePizzaParams) (*model.Pizza, error) {
	return f.catalog.CreatePizza(ctx, p)
}

func (f *SnackFacade) Pizza(ctx context.Context, id string) (*model.Pizza, error) {
	return f.catalog.GetPizza(ctx, id)
}

func (f *SnackFacade) Pizzas(ctx context.Context, skip, limit int) ([]model.Pizza, int, error) {
	return f.catalog.ListPizzas(ctx, skip, limit)
}

func (f *SnackFacade) UpdatePizza(ctx context.Context, id string, update repository.PizzaUpdate) (*model.Pizza, error) {
	return f.catalog.UpdatePizza(ctx, id, update)
}

func (f *SnackFacade) DeletePizza(ctx context.Context, id string) error {
	return f.catalog.DeletePizza(ctx, id)
}

func (f *SnackFacade) CreateExtra(ctx context.Context, p usecase.CreateExtraParams) (*model.Extra, error) {
	return f.catalog.CreateExtra(ctx, p)
}

func (f *SnackFacade) Extra(ctx context.Context, id string) (*model.Extra, error) {
	return f.catalog.GetExtra(ctx, id)
}

func (f *SnackFacade) Extras(ctx context.Context, skip, limit int) ([]model.Extra, int, error) {
	return f.catalog.ListExtras(ctx, skip, limit)
}

func (f *SnackFacade) UpdateExtra(ctx context.Context, id string, update repository.ExtraUpdate) (*model.Extra, error) {
	return f.catalog.UpdateExtra(ctx, id, update)
}

func (f *SnackFacade) DeleteExtra(ctx context.Context, id string) error {
	return f.catalog.DeleteExtra(ctx, id)
}

func (f *SnackFacade) RegisterUser(ctx context.Context, p usecase.RegisterParams) (*model.User, error) {
	return f.users.Register(ctx, p)
}

func (f *SnackFacade) User(ctx context.Context, id string) (*model.User, error) {
	return f.users.GetByID(ctx, id)
}

func (f *SnackFacade) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.users.GetByEmail(ctx, email)
}

func (f *SnackFacade) Users(ctx context.Context, skip, limit int) ([]model.User, int, error) {
	return f.users.List(ctx, skip, limit)
}

func (f *SnackFacade) UpdateUser(ctx context.Context, id string, update repository.UserUpdate) (*model.User, error) {
	return f.users.Update(ctx, id, update)
}

func (f *SnackFacade) DeleteUser(ctx context.Context, id string) error {
	return f.users.Deactivate(ctx, id)
}

func (f *SnackFacade) PlaceOrder(ctx context.Context, p usecase.CreateOrderParams) (*model.Order, error) {
	return f.orders.Create(ctx, p)
}

func (f *SnackFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *SnackFacade) Orders(ctx context.Context, skip, limit int) ([]model.Order, int, error) {
	return f.orders.List(ctx, skip, limit)
}

func (f *SnackFacade) OrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *SnackFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}
