package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/usersnack/usersnack/internal/domain/errors"
	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/domain/repository"
)

// ExtraRequest references an extra with its per-item quantity, already
// normalized from the two accepted request shapes (bare id, id+quantity).
type ExtraRequest struct {
	ID       string
	Quantity int
}

// OrderItemParams is one requested line of an order before pricing.
type OrderItemParams struct {
	PizzaID  string
	Quantity int
	Extras   []ExtraRequest
}

// PriceOrderItem resolves current catalog prices for one requested item and
// returns an immutable snapshot with the computed line total.
//
// The pizza reference is mandatory: a miss fails the item (and with it the
// whole order) with ErrInvalidReference. Extras are permissive: a reference
// that no longer resolves is skipped and contributes nothing, so an extra
// retired between cart and checkout does not block the order.
func PriceOrderItem(ctx context.Context, catalog repository.CatalogRepository, item OrderItemParams) (model.OrderItem, error) {
	pizza, err := catalog.GetPizzaByID(ctx, item.PizzaID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.OrderItem{}, fmt.Errorf("%w: pizza %s", domainErrors.ErrInvalidReference, item.PizzaID)
		}
		return model.OrderItem{}, err
	}

	quantity := item.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	total := pizza.Price * float64(quantity)

	snapshots := make([]model.ExtraSnapshot, 0, len(item.Extras))
	for _, req := range item.Extras {
		extraQuantity := req.Quantity
		if extraQuantity <= 0 {
			extraQuantity = 1
		}

		extra, err := catalog.GetExtraByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				continue
			}
			return model.OrderItem{}, err
		}

		snapshots = append(snapshots, model.ExtraSnapshot{ID: extra.ID, Name: extra.Name, Price: extra.Price})
		total += extra.Price * float64(extraQuantity) * float64(quantity)
	}

	return model.OrderItem{
		PizzaID:    pizza.ID,
		PizzaName:  pizza.Name,
		PizzaPrice: pizza.Price,
		Extras:     snapshots,
		Quantity:   quantity,
		ItemTotal:  total,
	}, nil
}
