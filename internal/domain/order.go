package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks order fulfillment.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// Order represents one placed panel order. Immutable once created;
// Charge is the exact amount debited from the buyer.
type Order struct {
	ID        string
	AccountID string
	ServiceID string
	Link      string
	Quantity  int64
	Charge    decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}

// Validate validates the order payload before any transaction starts.
func (o *Order) Validate() error {
	if o.Charge.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidCharge
	}

	if err := ValidateServiceID(o.ServiceID); err != nil {
		return err
	}

	if err := ValidateLink(o.Link); err != nil {
		return err
	}

	return ValidateQuantity(o.Quantity)
}
