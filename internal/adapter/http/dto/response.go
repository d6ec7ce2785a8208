package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID                string          `json:"id"`
	Email             string          `json:"email"`
	Balance           decimal.Decimal `json:"balance"`
	AdBalance         decimal.Decimal `json:"ad_balance"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	Rank              string          `json:"rank"`
	AffiliateLevel    string          `json:"affiliate_level"`
	AffiliateEarnings decimal.Decimal `json:"affiliate_earnings"`
	ReferrerID        *string         `json:"referrer_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:                a.ID,
		Email:             a.Email,
		Balance:           a.Balance,
		AdBalance:         a.AdBalance,
		TotalSpent:        a.TotalSpent,
		Rank:              a.Rank,
		AffiliateLevel:    a.AffiliateLevel,
		AffiliateEarnings: a.AffiliateEarnings,
		ReferrerID:        a.ReferrerID,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// RankResponse represents a loyalty rank in API responses.
type RankResponse struct {
	Name            string          `json:"name"`
	MinSpend        decimal.Decimal `json:"min_spend"`
	DiscountPct     decimal.Decimal `json:"discount_pct"`
	PromotionReward decimal.Decimal `json:"promotion_reward"`
}

// RankFromDomain converts a domain rank to response.
func RankFromDomain(r domain.Rank) *RankResponse {
	return &RankResponse{
		Name:            r.Name,
		MinSpend:        r.MinSpend,
		DiscountPct:     r.DiscountPct,
		PromotionReward: r.PromotionReward,
	}
}

// OverviewResponse represents an account overview in API responses.
type OverviewResponse struct {
	Account *AccountResponse `json:"account"`
	Rank    *RankResponse    `json:"rank"`
}

// OverviewFromUseCase converts an account overview to response.
func OverviewFromUseCase(o *usecase.AccountOverview) *OverviewResponse {
	return &OverviewResponse{
		Account: AccountFromDomain(o.Account),
		Rank:    RankFromDomain(o.Rank),
	}
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	ServiceID string          `json:"service_id"`
	Link      string          `json:"link"`
	Quantity  int64           `json:"quantity"`
	Charge    decimal.Decimal `json:"charge"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderFromDomain converts domain order to response.
func OrderFromDomain(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:        o.ID,
		AccountID: o.AccountID,
		ServiceID: o.ServiceID,
		Link:      o.Link,
		Quantity:  o.Quantity,
		Charge:    o.Charge,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

// OrdersFromDomain converts domain orders to responses.
func OrdersFromDomain(orders []*domain.Order) []*OrderResponse {
	result := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = OrderFromDomain(o)
	}
	return result
}

// CommissionResponse represents a commission record in API responses.
type CommissionResponse struct {
	ID         string          `json:"id"`
	ReferrerID string          `json:"referrer_id"`
	ReferredID string          `json:"referred_id"`
	OrderID    string          `json:"order_id"`
	Amount     decimal.Decimal `json:"amount"`
	Level      int             `json:"level"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CommissionFromDomain converts a domain commission record to response.
func CommissionFromDomain(c *domain.AffiliateTransaction) *CommissionResponse {
	return &CommissionResponse{
		ID:         c.ID,
		ReferrerID: c.ReferrerID,
		ReferredID: c.ReferredID,
		OrderID:    c.OrderID,
		Amount:     c.Amount,
		Level:      c.Level,
		CreatedAt:  c.CreatedAt,
	}
}

// CommissionsFromDomain converts domain commission records to responses.
func CommissionsFromDomain(commissions []*domain.AffiliateTransaction) []*CommissionResponse {
	result := make([]*CommissionResponse, len(commissions))
	for i, c := range commissions {
		result[i] = CommissionFromDomain(c)
	}
	return result
}

// PromotionResponse represents a rank promotion in API responses.
type PromotionResponse struct {
	AccountID string `json:"account_id"`
	OldRank   string `json:"old_rank"`
	NewRank   string `json:"new_rank"`
	Reward    string `json:"reward"`
}

// PromotionFromDomain converts a domain promotion event to response.
func PromotionFromDomain(p *domain.PromotionEvent) *PromotionResponse {
	if p == nil {
		return nil
	}
	return &PromotionResponse{
		AccountID: p.AccountID,
		OldRank:   p.OldRank,
		NewRank:   p.NewRank,
		Reward:    p.Reward,
	}
}

// PlaceOrderResponse represents the full outcome of an order placement.
type PlaceOrderResponse struct {
	Order       *OrderResponse        `json:"order"`
	Promotion   *PromotionResponse    `json:"promotion,omitempty"`
	Commissions []*CommissionResponse `json:"commissions"`
}

// PlaceOrderFromUseCase converts an order placement result to response.
func PlaceOrderFromUseCase(res *usecase.PlaceOrderResult) *PlaceOrderResponse {
	return &PlaceOrderResponse{
		Order:       OrderFromDomain(res.Order),
		Promotion:   PromotionFromDomain(res.Promotion),
		Commissions: CommissionsFromDomain(res.Commissions),
	}
}

// EarningsResponse represents an affiliate earnings summary.
type EarningsResponse struct {
	AccountID      string          `json:"account_id"`
	AffiliateLevel string          `json:"affiliate_level"`
	Earnings       decimal.Decimal `json:"earnings"`
}

// EarningsFromUseCase converts an earnings summary to response.
func EarningsFromUseCase(s *usecase.EarningsSummary) *EarningsResponse {
	return &EarningsResponse{
		AccountID:      s.AccountID,
		AffiliateLevel: s.AffiliateLevel,
		Earnings:       s.Earnings,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
