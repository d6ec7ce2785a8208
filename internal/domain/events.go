package domain

import "time"

// Event types
const (
	EventTypePromotion          = "account.promoted"
	EventTypeCommission         = "affiliate.commission"
	EventTypeOrderCreated       = "order.created"
	EventTypeEarningsWithdrawal = "affiliate.withdrawal"
)

// Aggregate types
const (
	AggregateTypeAccount = "account"
	AggregateTypeOrder   = "order"
)

// OutboxEvent represents a notification staged inside the placing
// transaction and delivered after commit.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PromotionEvent payload
type PromotionEvent struct {
	AccountID string `json:"account_id"`
	OldRank   string `json:"old_rank"`
	NewRank   string `json:"new_rank"`
	Reward    string `json:"reward"`
}

// CommissionEvent payload
type CommissionEvent struct {
	ReferrerID string `json:"referrer_id"`
	ReferredID string `json:"referred_id"`
	OrderID    string `json:"order_id"`
	Amount     string `json:"amount"`
	Level      int    `json:"level"`
}

// OrderCreatedEvent payload
type OrderCreatedEvent struct {
	OrderID   string `json:"order_id"`
	AccountID string `json:"account_id"`
	ServiceID string `json:"service_id"`
	Charge    string `json:"charge"`
}
