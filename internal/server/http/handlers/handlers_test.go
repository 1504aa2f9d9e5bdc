package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/usersnack/usersnack/internal/domain/errors"
	"github.com/usersnack/usersnack/internal/domain/model"
	"github.com/usersnack/usersnack/internal/server/http/dto"
	"github.com/usersnack/usersnack/internal/server/http/middleware"
	testhelpers "github.com/usersnack/usersnack/internal/test"
	"github.com/usersnack/usersnack/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != "" {
		t.Fatalf("expected empty id when not set, got %q", got)
	}

	c.Set(middleware.UserIDContextKey, "user-42")
	if got := CurrentUserID(c); got != "user-42" {
		t.Fatalf("expected user-42, got %q", got)
	}
}

func TestPathIDRejectsMalformedID(t *testing.T) {
	handler := NewPizzaHandler(testhelpers.CatalogFacadeStub{
		PizzaFn: func(context.Context, string) (*model.Pizza, error) {
			t.Fatal("facade must not be reached for malformed ids")
			return nil, nil
		},
	})
	resp := performRequest(t, http.MethodGet, "/pizzas/:id", "/pizzas/not-a-uuid", handler.Get, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestPizzaHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreatePizzaRequest{
		Name:        "Margherita",
		Price:       11.9,
		Ingredients: []string{"tomato", "mozzarella"},
	})
	handler := NewPizzaHandler(testhelpers.CatalogFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/pizzas", "/pizzas", handler.Create, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created dto.PizzaResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Name != "Margherita" || created.Price != 11.9 {
		t.Fatalf("unexpected response: %+v", created)
	}
}

func TestPizzaHandlerCreateRejectsBadBody(t *testing.T) {
	handler := NewPizzaHandler(testhelpers.CatalogFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/pizzas", "/pizzas", handler.Create, []byte(`{"name":"x"}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.Code)
	}
}

func TestPizzaHandlerCreateConflict(t *testing.T) {
	handler := NewPizzaHandler(testhelpers.CatalogFacadeStub{
		CreatePizzaFn: func(context.Context, usecase.CreatePizzaParams) (*model.Pizza, error) {
			return nil, fmt.Errorf("%w: pizza name taken", domainErrors.ErrAlreadyExists)
		},
	})
	body, _ := json.Marshal(dto.CreatePizzaRequest{Name: "Margherita", Price: 11.9, Ingredients: []string{"tomato"}})
	resp := performRequest(t, http.MethodPost, "/pizzas", "/pizzas", handler.Create, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestPizzaHandlerGetNotFound(t *testing.T) {
	handler := NewPizzaHandler(testhelpers.CatalogFacadeStub{
		PizzaFn: func(context.Context, string) (*model.Pizza, error) {
			return nil, domainErrors.ErrNotFound
		},
	})
	resp := performRequest(t, http.MethodGet, "/pizzas/:id", "/pizzas/"+uuid.NewString(), handler.Get, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestPizzaHandlerListEnvelope(t *testing.T) {
	handler := NewPizzaHandler(testhelpers.CatalogFacadeStub{
		PizzasFn: func(_ context.Context, skip, limit int) ([]model.Pizza, int, error) {
			if skip != 10 || limit != 5 {
				t.Fatalf("unexpected window: skip=%d limit=%d", skip, limit)
			}
			return []model.Pizza{{ID: uuid.NewString(), Name: "Margherita", Available: true}}, 11, nil
		},
	})
	resp := performRequest(t, http.MethodGet, "/pizzas", "/pizzas?page=3&limit=5", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var page dto.Page[dto.PizzaResponse]
	if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if page.Total != 11 || page.Page != 3 || page.Limit != 5 || page.Pages != 3 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
	if page.HasNext || !page.HasPrev {
		t.Fatalf("unexpected navigation flags: %+v", page)
	}
}

func TestPizzaHandlerDelete(t *testing.T) {
	handler := NewPizzaHandler(testhelpers.CatalogFacadeStub{})
	resp := performRequest(t, http.MethodDelete, "/pizzas/:id", "/pizzas/"+uuid.NewString(), handler.Delete, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	handler = NewPizzaHandler(testhelpers.CatalogFacadeStub{
		DeletePizzaFn: func(context.Context, string) error { return domainErrors.ErrNotFound },
	})
	resp = performRequest(t, http.MethodDelete, "/pizzas/:id", "/pizzas/"+uuid.NewString(), handler.Delete, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown pizza, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	pizzaID := uuid.NewString()
	extraID := uuid.NewString()
	var gotParams usecase.CreateOrderParams

	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		PlaceFn: func(_ context.Context, p usecase.CreateOrderParams) (*model.Order, error) {
			gotParams = p
			return &model.Order{
				ID:            uuid.NewString(),
				CustomerName:  p.CustomerName,
				CustomerEmail: p.CustomerEmail,
				Status:        model.OrderStatusPending,
				TotalAmount:   26.8,
			}, nil
		},
	})

	// one extra as bare id, one as an object with quantity
	body := []byte(fmt.Sprintf(`{
		"customer_name": "Jamie",
		"customer_email": "jamie@example.com",
		"customer_address": "1 Main St",
		"items": [
			{"pizza_id": %q, "quantity": 2, "extras": [%q, {"extra_id": %q, "quantity": 3}]}
		]
	}`, pizzaID, extraID, extraID))

	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	if len(gotParams.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(gotParams.Items))
	}
	extras := gotParams.Items[0].Extras
	if len(extras) != 2 {
		t.Fatalf("expected two extras, got %d", len(extras))
	}
	if extras[0].ID != extraID || extras[0].Quantity != 1 {
		t.Fatalf("bare id form not normalized: %+v", extras[0])
	}
	if extras[1].ID != extraID || extras[1].Quantity != 3 {
		t.Fatalf("object form not preserved: %+v", extras[1])
	}

	var created dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != "pending" || created.TotalPrice != 26.8 {
		t.Fatalf("unexpected response: %+v", created)
	}
}

func TestOrderHandlerCreateInvalidReference(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		PlaceFn: func(context.Context, usecase.CreateOrderParams) (*model.Order, error) {
			return nil, fmt.Errorf("%w: pizza missing", domainErrors.ErrInvalidReference)
		},
	})
	body := []byte(fmt.Sprintf(`{
		"customer_name": "Jamie",
		"customer_email": "jamie@example.com",
		"customer_address": "1 Main St",
		"items": [{"pizza_id": %q}]
	}`, uuid.NewString()))

	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderHandlerCreateRejectsEmptyItems(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		PlaceFn: func(context.Context, usecase.CreateOrderParams) (*model.Order, error) {
			t.Fatal("facade must not be reached for empty items")
			return nil, nil
		},
	})
	body := []byte(`{
		"customer_name": "Jamie",
		"customer_email": "jamie@example.com",
		"customer_address": "1 Main St",
		"items": []
	}`)

	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	orderID := uuid.NewString()
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		UpdateStatusFn: func(_ context.Context, id string, status model.OrderStatus) (*model.Order, error) {
			if !status.Valid() {
				return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
			}
			return &model.Order{ID: id, Status: status}, nil
		},
	})

	body, _ := json.Marshal(dto.UpdateOrderStatusRequest{Status: "confirmed"})
	resp := performRequest(t, http.MethodPut, "/orders/:id/status", "/orders/"+orderID+"/status", handler.UpdateStatus, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	body, _ = json.Marshal(dto.UpdateOrderStatusRequest{Status: "shipped"})
	resp = performRequest(t, http.MethodPut, "/orders/:id/status", "/orders/"+orderID+"/status", handler.UpdateStatus, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", resp.Code)
	}
}

func TestUserHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "secret123",
	})
	handler := NewUserHandler(testhelpers.UserFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/users", "/users", handler.Create, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUserHandlerCreateConflict(t *testing.T) {
	handler := NewUserHandler(testhelpers.UserFacadeStub{
		RegisterFn: func(context.Context, usecase.RegisterParams) (*model.User, error) {
			return nil, fmt.Errorf("%w: email taken", domainErrors.ErrAlreadyExists)
		},
	})
	body, _ := json.Marshal(dto.CreateUserRequest{Name: "Jamie", Email: "jamie@example.com", Password: "secret123"})
	resp := performRequest(t, http.MethodPost, "/users", "/users", handler.Create, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestUserHandlerGetByEmailRejectsMalformed(t *testing.T) {
	handler := NewUserHandler(testhelpers.UserFacadeStub{
		UserByEmailFn: func(context.Context, string) (*model.User, error) {
			t.Fatal("facade must not be reached for malformed email")
			return nil, nil
		},
	})
	resp := performRequest(t, http.MethodGet, "/users/email/:email", "/users/email/not-an-email", handler.GetByEmail, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAuthHandlerToken(t *testing.T) {
	userID := uuid.NewString()
	auth := testhelpers.AuthFacadeStub{
		IssueFn: func(id string) (string, error) {
			if id != userID {
				t.Fatalf("unexpected user id: %q", id)
			}
			return "issued-token", nil
		},
		TTLVal: 30 * time.Minute,
	}
	handler := NewAuthHandler(auth, testhelpers.UserFacadeStub{})

	body, _ := json.Marshal(dto.TokenRequest{UserID: userID})
	resp := performRequest(t, http.MethodPost, "/auth/token", "/auth/token", handler.Token, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var token dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &token); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if token.AccessToken != "issued-token" || token.TokenType != "bearer" || token.ExpiresIn != 1800 {
		t.Fatalf("unexpected token response: %+v", token)
	}
}

func TestAuthHandlerTokenUnknownUser(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{}, testhelpers.UserFacadeStub{
		UserFn: func(context.Context, string) (*model.User, error) {
			return nil, domainErrors.ErrNotFound
		},
	})
	body, _ := json.Marshal(dto.TokenRequest{UserID: uuid.NewString()})
	resp := performRequest(t, http.MethodPost, "/auth/token", "/auth/token", handler.Token, body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestHandleDomainErrorDefaultsTo500(t *testing.T) {
	handler := NewExtraHandler(testhelpers.CatalogFacadeStub{
		ExtraFn: func(context.Context, string) (*model.Extra, error) {
			return nil, errors.New("connection reset")
		},
	})
	resp := performRequest(t, http.MethodGet, "/extras/:id", "/extras/"+uuid.NewString(), handler.Get, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("connection reset")) {
		t.Fatal("internal error detail must not leak to the client")
	}
}

func TestHealthHandler(t *testing.T) {
	ok := NewHealthHandler(healthCheckerFunc(func(context.Context) error { return nil }))
	resp := performRequest(t, http.MethodGet, "/health", "/health", ok.Status, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	down := NewHealthHandler(healthCheckerFunc(func(context.Context) error { return errors.New("down") }))
	resp = performRequest(t, http.MethodGet, "/health", "/health", down.Status, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

type healthCheckerFunc func(ctx context.Context) error

func (f healthCheckerFunc) HealthCheck(ctx context.Context) error { return f(ctx) }
