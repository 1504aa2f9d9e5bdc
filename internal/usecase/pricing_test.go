package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/usersnack/usersnack/internal/domain/errors"
	"github.com/usersnack/usersnack/internal/domain/model"
	testhelpers "github.com/usersnack/usersnack/internal/test"
	"github.com/usersnack/usersnack/internal/usecase"
)

func seedCatalog(t *testing.T) (*testhelpers.CatalogRepositoryStub, *model.Pizza, *model.Extra) {
	t.Helper()
	catalog := testhelpers.NewCatalogRepositoryStub()
	pizza := &model.Pizza{
		ID:          uuid.NewString(),
		Name:        "Margherita",
		Price:       11.9,
		Ingredients: []string{"tomato", "mozzarella"},
		Available:   true,
		CreatedAt:   time.Now(),
	}
	extra := &model.Extra{
		ID:        uuid.NewString(),
		Name:      "Olives",
		Price:     1.5,
		Available: true,
		CreatedAt: time.Now(),
	}
	if _, err := catalog.CreatePizza(context.Background(), pizza); err != nil {
		t.Fatalf("seed pizza: %v", err)
	}
	if _, err := catalog.CreateExtra(context.Background(), extra); err != nil {
		t.Fatalf("seed extra: %v", err)
	}
	return catalog, pizza, extra
}

func TestPriceOrderItemSnapshot(t *testing.T) {
	catalog, pizza, extra := seedCatalog(t)

	item, err := usecase.PriceOrderItem(context.Background(), catalog, usecase.OrderItemParams{
		PizzaID:  pizza.ID,
		Quantity: 2,
		Extras:   []usecase.ExtraRequest{{ID: extra.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.PizzaName != "Margherita" || item.PizzaPrice != 11.9 {
		t.Fatalf("unexpected pizza snapshot: %+v", item)
	}
	if len(item.Extras) != 1 || item.Extras[0].Name != "Olives" || item.Extras[0].Price != 1.5 {
		t.Fatalf("unexpected extra snapshot: %+v", item.Extras)
	}
	want := 11.9*2 + 1.5*1*2
	if item.ItemTotal != want {
		t.Fatalf("expected total %.2f, got %.2f", want, item.ItemTotal)
	}

	// later catalog edits must not reach the snapshot
	newPrice := 99.0
	pizza.Price = newPrice
	extra.Price = newPrice
	if item.PizzaPrice != 11.9 || item.Extras[0].Price != 1.5 {
		t.Fatalf("snapshot tracked catalog mutation: %+v", item)
	}
}

func TestPriceOrderItemMissingPizza(t *testing.T) {
	catalog, _, _ := seedCatalog(t)

	_, err := usecase.PriceOrderItem(context.Background(), catalog, usecase.OrderItemParams{PizzaID: uuid.NewString(), Quantity: 1})
	if !errors.Is(err, domainErrors.ErrInvalidReference) {
		t.Fatalf("expected invalid reference, got %v", err)
	}
}

func TestPriceOrderItemSkipsMissingExtras(t *testing.T) {
	catalog, pizza, extra := seedCatalog(t)

	item, err := usecase.PriceOrderItem(context.Background(), catalog, usecase.OrderItemParams{
		PizzaID:  pizza.ID,
		Quantity: 1,
		Extras: []usecase.ExtraRequest{
			{ID: uuid.NewString(), Quantity: 3},
			{ID: extra.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(item.Extras) != 1 || item.Extras[0].ID != extra.ID {
		t.Fatalf("expected unresolved extra to be skipped: %+v", item.Extras)
	}
	if want := 11.9 + 1.5; item.ItemTotal != want {
		t.Fatalf("expected total %.2f, got %.2f", want, item.ItemTotal)
	}
}

func TestPriceOrderItemDefaultsQuantities(t *testing.T) {
	catalog, pizza, extra := seedCatalog(t)

	item, err := usecase.PriceOrderItem(context.Background(), catalog, usecase.OrderItemParams{
		PizzaID: pizza.ID,
		Extras:  []usecase.ExtraRequest{{ID: extra.ID}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", item.Quantity)
	}
	if want := 11.9 + 1.5; item.ItemTotal != want {
		t.Fatalf("expected total %.2f, got %.2f", want, item.ItemTotal)
	}
}

func TestPriceOrderItemPropagatesRepoError(t *testing.T) {
	catalog, pizza, _ := seedCatalog(t)
	params := usecase.OrderItemParams{PizzaID: pizza.ID, Extras: []usecase.ExtraRequest{{ID: uuid.NewString()}}}

	boom := errors.New("boom")
	catalog.Err = boom
	if _, err := usecase.PriceOrderItem(context.Background(), catalog, params); !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
