package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/usersnack/usersnack/internal/domain/errors"
	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/domain/repository"
)

// CatalogUseCase manages pizzas and extras. Deleting either kind only clears
// the availability flag so order snapshots keep resolving.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// CreatePizzaParams carries validated input for a new pizza.
type CreatePizzaParams struct {
	Name        string
	Description string
	Price       float64
	Ingredients []string
	ImageURL    *string
}

func (u *CatalogUseCase) CreatePizza(ctx context.Context, p CreatePizzaParams) (*model.Pizza, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: pizza name is required", domainErrors.ErrValidation)
	}
	if p.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", domainErrors.ErrValidation)
	}
	if len(p.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", domainErrors.ErrValidation)
	}

	pizza := &model.Pizza{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(p.Description),
		Price:       p.Price,
		Ingredients: p.Ingredients,
		ImageURL:    p.ImageURL,
		Available:   true,
		CreatedAt:   time.Now().UTC(),
	}
	return u.catalog.CreatePizza(ctx, pizza)
}

func (u *CatalogUseCase) GetPizza(ctx context.Context, id string) (*model.Pizza, error) {
	return u.catalog.GetPizzaByID(ctx, id)
}

func (u *CatalogUseCase) ListPizzas(ctx context.Context, skip, limit int) ([]model.Pizza, int, error) {
	return u.catalog.ListPizzas(ctx, skip, limit)
}

func (u *CatalogUseCase) UpdatePizza(ctx context.Context, id string, update repository.PizzaUpdate) (*model.Pizza, error) {
	if update.Price != nil && *update.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", domainErrors.ErrValidation)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, fmt.Errorf("%w: pizza name cannot be empty", domainErrors.ErrValidation)
	}
	return u.catalog.UpdatePizza(ctx, id, update)
}

func (u *CatalogUseCase) DeletePizza(ctx context.Context, id string) error {
	return u.catalog.SoftDeletePizza(ctx, id)
}

// CreateExtraParams carries validated input for a new extra.
type CreateExtraParams struct {
	Name  string
	Price float64
}

func (u *CatalogUseCase) CreateExtra(ctx context.Context, p CreateExtraParams) (*model.Extra, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: extra name is required", domainErrors.ErrValidation)
	}
	if p.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", domainErrors.ErrValidation)
	}

	extra := &model.Extra{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     p.Price,
		Available: true,
		CreatedAt: time.Now().UTC(),
	}
	return u.catalog.CreateExtra(ctx, extra)
}

func (u *CatalogUseCase) GetExtra(ctx context.Context, id string) (*model.Extra, error) {
	return u.catalog.GetExtraByID(ctx, id)
}

func (u *CatalogUseCase) ListExtras(ctx context.Context, skip, limit int) ([]model.Extra, int, error) {
	return u.catalog.ListExtras(ctx, skip, limit)
}

func (u *CatalogUseCase) UpdateExtra(ctx context.Context, id string, update repository.ExtraUpdate) (*model.Extra, error) {
	if update.Price != nil && *update.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", domainErrors.ErrValidation)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, fmt.Errorf("%w: extra name cannot be empty", domainErrors.ErrValidation)
	}
	return u.catalog.UpdateExtra(ctx, id, update)
}

func (u *CatalogUseCase) DeleteExtra(ctx context.Context, id string) error {
	return u.catalog.SoftDeleteExtra(ctx, id)
}
