package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glowpanel/engine/internal/adapter/http/dto"
	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/usecase"
)

// OrderService defines the behavior needed by OrderHandler.
type OrderService interface {
	PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderResult, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByAccount(ctx context.Context, input usecase.ListOrdersByAccountInput) ([]*domain.Order, error)
}

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orderUC OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderUC OrderService) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// Place places a new order.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.orderUC.PlaceOrder(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to place order", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PlaceOrderFromUseCase(result))
}

// Get retrieves an order by ID.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing order ID", "")
		return
	}

	order, err := h.orderUC.GetOrder(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get order", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.OrderFromDomain(order))
}

// ListByAccount lists orders for an account, newest first.
func (h *OrderHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	orders, err := h.orderUC.ListOrdersByAccount(r.Context(), usecase.ListOrdersByAccountInput{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdersFromDomain(orders))
}
