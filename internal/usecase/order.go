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

// OrderUseCase assembles and tracks orders.
type OrderUseCase struct {
	uow    repository.UnitOfWork
	orders repository.OrderRepository
	users  repository.UserRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(uow repository.UnitOfWork, orders repository.OrderRepository, users repository.UserRepository) *OrderUseCase {
	return &OrderUseCase{uow: uow, orders: orders, users: users}
}

// CreateOrderParams carries a checkout request.
type CreateOrderParams struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CustomerAddress string
	Items           []OrderItemParams
}

// Create assembles one order inside a unit of work: the customer is resolved
// (or created) by email, every requested item is priced against the current
// catalog, and a single aggregate with snapshotted prices is written with
// status pending. A pizza reference that does not resolve aborts the whole
// operation with nothing persisted on the transactional path.
//
// The order's customer fields are taken from the request as given, not from
// the resolved user record.
func (u *OrderUseCase) Create(ctx context.Context, p CreateOrderParams) (*model.Order, error) {
	if strings.TrimSpace(p.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customer email is required", domainErrors.ErrValidation)
	}
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrValidation)
	}

	var created *model.Order
	err := u.uow.WithinUnitOfWork(ctx, func(repos repository.Factory) error {
		userID, err := ResolveOrCreate(ctx, repos.Users(), p.CustomerName, p.CustomerEmail, p.CustomerPhone, &p.CustomerAddress)
		if err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(p.Items))
		var total float64
		for _, requested := range p.Items {
			item, err := PriceOrderItem(ctx, repos.Catalog(), requested)
			if err != nil {
				return err
			}
			items = append(items, item)
			total += item.ItemTotal
		}

		now := time.Now().UTC()
		order := &model.Order{
			ID:              uuid.NewString(),
			UserID:          userID,
			CustomerName:    p.CustomerName,
			CustomerEmail:   p.CustomerEmail,
			CustomerPhone:   p.CustomerPhone,
			CustomerAddress: p.CustomerAddress,
			Items:           items,
			TotalAmount:     total,
			Status:          model.OrderStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		created, err = repos.Orders().Insert(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

func (u *OrderUseCase) List(ctx context.Context, skip, limit int) ([]model.Order, int, error) {
	return u.orders.List(ctx, skip, limit)
}

// ListByUser returns the user's orders, newest first. An unknown user id is
// ErrNotFound rather than an empty listing.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return u.orders.ListByUser(ctx, userID)
}

// UpdateStatus sets any known status value regardless of the current one.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}
	return u.orders.SetStatus(ctx, id, status)
}
