package test

import (
	"context"
	"strings"
	"sync"

	domainErrors "github.com/usersnack/usersnack/internal/domain/errors"
	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/domain/repository"
)

// CatalogRepositoryStub stores pizzas and extras in-memory for tests.
type CatalogRepositoryStub struct {
	Pizzas []*model.Pizza
	Extras []*model.Extra
	Err    error
}

// NewCatalogRepositoryStub constructs an empty catalog stub.
func NewCatalogRepositoryStub() *CatalogRepositoryStub {
	return &CatalogRepositoryStub{}
}

// CreatePizza appends the pizza unless a name duplicate exists.
func (s *CatalogRepositoryStub) CreatePizza(ctx context.Context, pizza *model.Pizza) (*model.Pizza, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Pizzas {
		if strings.EqualFold(p.Name, pizza.Name) {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	s.Pizzas = append(s.Pizzas, pizza)
	return pizza, nil
}

// GetPizzaByID resolves pizzas regardless of availability.
func (s *CatalogRepositoryStub) GetPizzaByID(ctx context.Context, id string) (*model.Pizza, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Pizzas {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListPizzas returns available pizzas in insertion order.
func (s *CatalogRepositoryStub) ListPizzas(ctx context.Context, skip, limit int) ([]model.Pizza, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	available := make([]model.Pizza, 0, len(s.Pizzas))
	for _, p := range s.Pizzas {
		if p.Available {
			available = append(available, *p)
		}
	}
	return pageSlice(available, skip, limit), len(available), nil
}

// UpdatePizza applies non-nil fields to the stored pizza.
func (s *CatalogRepositoryStub) UpdatePizza(ctx context.Context, id string, update repository.PizzaUpdate) (*model.Pizza, error) {
	pizza, err := s.GetPizzaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		pizza.Name = *update.Name
	}
	if update.Description != nil {
		pizza.Description = *update.Description
	}
	if update.Price != nil {
		pizza.Price = *update.Price
	}
	if update.Ingredients != nil {
		pizza.Ingredients = update.Ingredients
	}
	if update.ImageURL != nil {
		pizza.ImageURL = update.ImageURL
	}
	return pizza, nil
}

// SoftDeletePizza marks the pizza unavailable.
func (s *CatalogRepositoryStub) SoftDeletePizza(ctx context.Context, id string) error {
	pizza, err := s.GetPizzaByID(ctx, id)
	if err != nil {
		return err
	}
	pizza.Available = false
	return nil
}

// CreateExtra appends the extra unless a name duplicate exists.
func (s *CatalogRepositoryStub) CreateExtra(ctx context.Context, extra *model.Extra) (*model.Extra, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, e := range s.Extras {
		if e.Name == extra.Name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	s.Extras = append(s.Extras, extra)
	return extra, nil
}

// GetExtraByID resolves extras regardless of availability.
func (s *CatalogRepositoryStub) GetExtraByID(ctx context.Context, id string) (*model.Extra, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, e := range s.Extras {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListExtras returns available extras in insertion order.
func (s *CatalogRepositoryStub) ListExtras(ctx context.Context, skip, limit int) ([]model.Extra, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	available := make([]model.Extra, 0, len(s.Extras))
	for _, e := range s.Extras {
		if e.Available {
			available = append(available, *e)
		}
	}
	return pageSlice(available, skip, limit), len(available), nil
}

// UpdateExtra applies non-nil fields to the stored extra.
func (s *CatalogRepositoryStub) UpdateExtra(ctx context.Context, id string, update repository.ExtraUpdate) (*model.Extra, error) {
	extra, err := s.GetExtraByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		extra.Name = *update.Name
	}
	if update.Price != nil {
		extra.Price = *update.Price
	}
	return extra, nil
}

// SoftDeleteExtra marks the extra unavailable.
func (s *CatalogRepositoryStub) SoftDeleteExtra(ctx context.Context, id string) error {
	extra, err := s.GetExtraByID(ctx, id)
	if err != nil {
		return err
	}
	extra.Available = false
	return nil
}

// UserRepositoryStub stores users in-memory, arbitrating duplicate emails
// under a mutex the way the unique index does in the real store.
type UserRepositoryStub struct {
	mu      sync.Mutex
	ByEmail map[string]*model.User
	ByID    map[string]*model.User
	Inserts []string
	Err     error

	CreateFn func(context.Context, *model.User) (*model.User, error)
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[string]*model.User),
	}
}

// Create registers the user unless the email is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, user)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := s.ByEmail[key]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.ByEmail[key] = user
	s.ByID[user.ID] = user
	s.Inserts = append(s.Inserts, user.ID)
	return user, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches user by email, case-insensitively.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.ByEmail[strings.ToLower(email)]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns active users.
func (s *UserRepositoryStub) List(ctx context.Context, skip, limit int) ([]model.User, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	active := make([]model.User, 0, len(s.Inserts))
	for _, id := range s.Inserts {
		if u := s.ByID[id]; u != nil && u.Active {
			active = append(active, *u)
		}
	}
	return pageSlice(active, skip, limit), len(active), nil
}

// Update applies non-nil fields to the stored user.
func (s *UserRepositoryStub) Update(ctx context.Context, id string, update repository.UserUpdate) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Email != nil {
		key := strings.ToLower(*update.Email)
		if existing, taken := s.ByEmail[key]; taken && existing.ID != id {
			return nil, domainErrors.ErrAlreadyExists
		}
		delete(s.ByEmail, strings.ToLower(user.Email))
		user.Email = *update.Email
		s.ByEmail[key] = user
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = update.Phone
	}
	if update.Address != nil {
		user.Address = update.Address
	}
	return user, nil
}

// Deactivate flips the active flag or returns not found.
func (s *UserRepositoryStub) Deactivate(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Active = false
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	InsertFn    func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn   func(context.Context, string) (*model.Order, error)
	SetStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)

	Orders []model.Order
}

// Insert tracks inserted orders and returns them unchanged.
func (s *OrderRepositoryStub) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, order)
	}
	s.Orders = append(s.Orders, *order)
	return order, nil
}

// GetByID returns the matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored orders with the pagination window applied.
func (s *OrderRepositoryStub) List(ctx context.Context, skip, limit int) ([]model.Order, int, error) {
	return pageSlice(s.Orders, skip, limit), len(s.Orders), nil
}

// ListByUser filters stored orders by user id.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	out := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// SetStatus updates the stored order or returns not found.
func (s *OrderRepositoryStub) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FactoryStub bundles repository stubs and plays the unit of work role by
// running the callback against itself.
type FactoryStub struct {
	CatalogRepo repository.CatalogRepository
	UsersRepo   repository.UserRepository
	OrdersRepo  repository.OrderRepository

	WithinFn func(context.Context, func(repository.Factory) error) error
	Calls    int
}

// NewFactoryStub wires fresh in-memory repositories.
func NewFactoryStub() *FactoryStub {
	return &FactoryStub{
		CatalogRepo: NewCatalogRepositoryStub(),
		UsersRepo:   NewUserRepositoryStub(),
		OrdersRepo:  &OrderRepositoryStub{},
	}
}

// Catalog returns the catalog repository stub.
func (s *FactoryStub) Catalog() repository.CatalogRepository { return s.CatalogRepo }

// Users returns the user repository stub.
func (s *FactoryStub) Users() repository.UserRepository { return s.UsersRepo }

// Orders returns the order repository stub.
func (s *FactoryStub) Orders() repository.OrderRepository { return s.OrdersRepo }

// WithinUnitOfWork executes fn against the stub repositories.
func (s *FactoryStub) WithinUnitOfWork(ctx context.Context, fn func(repository.Factory) error) error {
	s.Calls++
	if s.WithinFn != nil {
		return s.WithinFn(ctx, fn)
	}
	return fn(s)
}

func pageSlice[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return items[skip:end]
}
