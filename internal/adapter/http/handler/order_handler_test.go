package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/glowpanel/engine/internal/adapter/http/dto"
	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/usecase"
)

type orderServiceStub struct {
	placeFn func(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error)
	getFn   func(ctx context.Context, id string) (*domain.Order, error)
	listFn  func(ctx context.Context, input usecase.ListOrdersByAccountInput) ([]*domain.Order, error)
}

func (s *orderServiceStub) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error) {
	return s.placeFn(ctx, input)
}

func (s *orderServiceStub) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *orderServiceStub) ListOrdersByAccount(ctx context.Context, input usecase.ListOrdersByAccountInput) ([]*domain.Order, error) {
	return s.listFn(ctx, input)
}

func TestOrderHandler_Place_Success(t *testing.T) {
	result := &usecase.PlaceOrderResult{
		Order: &domain.Order{
			ID:        "ord-1",
			AccountID: "acc-1",
			ServiceID: "svc-1",
			Charge:    decimal.RequireFromString("5"),
			Status:    domain.OrderStatusInProgress,
		},
		Commissions: []*domain.AffiliateTransaction{
			{ID: "aff-1", ReferrerID: "ref-1", Level: 1},
		},
	}

	var captured usecase.PlaceOrderInput
	handler := NewOrderHandler(&orderServiceStub{
		placeFn: func(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error) {
			captured = input
			return result, nil
		},
	})

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		AccountID: "acc-1",
		ServiceID: "svc-1",
		Link:      "https://example.com/profile",
		Quantity:  1000,
		Charge:    decimal.RequireFromString("5"),
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Place(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != "acc-1" || captured.Quantity != 1000 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.PlaceOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Order.ID != "ord-1" {
		t.Fatalf("expected order ID ord-1, got %s", resp.Order.ID)
	}
	if len(resp.Commissions) != 1 || resp.Commissions[0].Level != 1 {
		t.Fatalf("expected commission records in response, got %+v", resp.Commissions)
	}
	if resp.Promotion != nil {
		t.Fatalf("expected no promotion in response, got %+v", resp.Promotion)
	}
}

func TestOrderHandler_Place_InvalidJSON(t *testing.T) {
	handler := NewOrderHandler(&orderServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Place(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_Place_InsufficientFunds(t *testing.T) {
	handler := NewOrderHandler(&orderServiceStub{
		placeFn: func(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error) {
			return nil, domain.ErrInsufficientFunds
		},
	})

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		AccountID: "acc-1",
		ServiceID: "svc-1",
		Link:      "https://example.com/profile",
		Quantity:  100,
		Charge:    decimal.RequireFromString("9999"),
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Place(rec, req)

	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}
}

func TestOrderHandler_Place_Contention(t *testing.T) {
	handler := NewOrderHandler(&orderServiceStub{
		placeFn: func(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error) {
			return nil, domain.ErrContention
		},
	})

	body, _ := json.Marshal(dto.PlaceOrderRequest{
		AccountID: "acc-1",
		ServiceID: "svc-1",
		Link:      "https://example.com/profile",
		Quantity:  100,
		Charge:    decimal.RequireFromString("5"),
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Place(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestOrderHandler_Get(t *testing.T) {
	handler := NewOrderHandler(&orderServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Order, error) {
			if id != "ord-1" {
				t.Fatalf("expected id ord-1, got %s", id)
			}
			return &domain.Order{ID: "ord-1"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/ord-1", nil)
	req = setChiURLParam(req, "id", "ord-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	handler := NewOrderHandler(&orderServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/ord-404", nil)
	req = setChiURLParam(req, "id", "ord-404")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestOrderHandler_ListByAccount(t *testing.T) {
	handler := NewOrderHandler(&orderServiceStub{
		listFn: func(ctx context.Context, input usecase.ListOrdersByAccountInput) ([]*domain.Order, error) {
			if input.AccountID != "acc-1" || input.Limit != 5 || input.Offset != 2 {
				t.Fatalf("expected acc-1 limit=5 offset=2, got %+v", input)
			}
			return []*domain.Order{{ID: "ord-1"}, {ID: "ord-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/orders?limit=5&offset=2", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.ListByAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(resp))
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
