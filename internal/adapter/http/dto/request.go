package dto

import (
	"github.com/shopspring/decimal"

	"github.com/glowpanel/engine/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Email      string  `json:"email"`
	ReferrerID *string `json:"referrer_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Email:      r.Email,
		ReferrerID: r.ReferrerID,
	}
}

// PlaceOrderRequest represents a request to place an order.
type PlaceOrderRequest struct {
	AccountID string          `json:"account_id"`
	ServiceID string          `json:"service_id"`
	Link      string          `json:"link"`
	Quantity  int64           `json:"quantity"`
	Charge    decimal.Decimal `json:"charge"`
}

// ToUseCaseInput converts to use case input.
func (r *PlaceOrderRequest) ToUseCaseInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		AccountID: r.AccountID,
		ServiceID: r.ServiceID,
		Link:      r.Link,
		Quantity:  r.Quantity,
		Charge:    r.Charge,
	}
}

// WithdrawRequest represents a request to move affiliate earnings to balance.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
