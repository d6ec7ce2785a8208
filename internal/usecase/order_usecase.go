package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/infrastructure/metrics"
)

// OrderUseCase handles order placement: debits the buyer, keeps the
// loyalty rank in step with cumulative spend, and cascades referral
// commissions up the referrer chain, all in one transaction.
type OrderUseCase struct {
	txManager     TransactionManager
	retrier       Retrier
	accountRepo   AccountRepository
	orderRepo     OrderRepository
	affiliateRepo AffiliateRepository
	outboxRepo    OutboxRepository
	idGen         IDGenerator
	ranks         *domain.RankTable
	commissions   *domain.CommissionSchedule
	metrics       *metrics.Metrics
}

// NewOrderUseCase creates a new OrderUseCase.
func NewOrderUseCase(
	txManager TransactionManager,
	retrier Retrier,
	accountRepo AccountRepository,
	orderRepo OrderRepository,
	affiliateRepo AffiliateRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	ranks *domain.RankTable,
	commissions *domain.CommissionSchedule,
	metrics *metrics.Metrics,
) *OrderUseCase {
	return &OrderUseCase{
		txManager:     txManager,
		retrier:       retrier,
		accountRepo:   accountRepo,
		orderRepo:     orderRepo,
		affiliateRepo: affiliateRepo,
		outboxRepo:    outboxRepo,
		idGen:         idGen,
		ranks:         ranks,
		commissions:   commissions,
		metrics:       metrics,
	}
}

// PlaceOrderInput represents input for placing an order.
type PlaceOrderInput struct {
	AccountID string
	ServiceID string
	Link      string
	Quantity  int64
	Charge    decimal.Decimal
}

// PlaceOrderResult is the committed outcome of one order placement.
type PlaceOrderResult struct {
	Order       *domain.Order
	Promotion   *domain.PromotionEvent
	Commissions []*domain.AffiliateTransaction
}

// PlaceOrder places an order as one atomic transaction. The whole
// transaction is re-run on store-detected conflicts; nothing is
// observable until commit.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error) {
	// Validate the payload before starting any transaction.
	if err := domain.ValidateCharge(input.Charge); err != nil {
		return nil, err
	}

	probe := &domain.Order{
		ServiceID: input.ServiceID,
		Link:      input.Link,
		Quantity:  input.Quantity,
		Charge:    input.Charge,
	}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	var result *PlaceOrderResult

	err := uc.retrier.Retry(ctx, func() error {
		var attemptErr error
		result, attemptErr = uc.placeOrderTx(ctx, input)

		return attemptErr
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.OrderErrors.WithLabelValues(errorLabel(err)).Inc()
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.OrdersPlaced.Inc()
		charge, _ := input.Charge.Float64()
		uc.metrics.OrderCharge.Observe(charge)
		if result.Promotion != nil {
			uc.metrics.Promotions.Inc()
		}
		for _, c := range result.Commissions {
			amount, _ := c.Amount.Float64()
			uc.metrics.CommissionsPaid.Observe(amount)
		}
	}

	return result, nil
}

// placeOrderTx runs one optimistic attempt. The retrier re-invokes it
// from scratch when the store aborts the transaction at commit.
func (uc *OrderUseCase) placeOrderTx(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	buyer, err := uc.accountRepo.GetTx(txCtx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if err := buyer.ValidateDebit(input.Charge); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	oldRank := uc.ranks.RankFor(buyer.TotalSpent)

	buyer.Balance = buyer.ApplyDebit(input.Charge)
	buyer.TotalSpent = buyer.ApplySpend(input.Charge)

	newRank := uc.ranks.RankFor(buyer.TotalSpent)
	buyer.Rank = newRank.Name

	var promotion *domain.PromotionEvent
	if newRank.Name != oldRank.Name {
		if newRank.PromotionReward.IsPositive() {
			buyer.AdBalance = buyer.AdBalance.Add(newRank.PromotionReward)
		}

		promotion = &domain.PromotionEvent{
			AccountID: buyer.ID,
			OldRank:   oldRank.Name,
			NewRank:   newRank.Name,
			Reward:    newRank.PromotionReward.String(),
		}
	}

	buyer.UpdatedAt = now

	// Balance, totalSpent, rank and adBalance land in a single update.
	if err := uc.accountRepo.Update(txCtx, tx, buyer); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:        uc.idGen.Generate(),
		AccountID: buyer.ID,
		ServiceID: input.ServiceID,
		Link:      input.Link,
		Quantity:  input.Quantity,
		Charge:    input.Charge,
		Status:    domain.OrderStatusInProgress,
		CreatedAt: now,
	}

	if err := uc.orderRepo.Create(txCtx, tx, order); err != nil {
		return nil, err
	}

	commissions, err := uc.cascade(txCtx, tx, buyer, order.ID, input.Charge, now)
	if err != nil {
		return nil, err
	}

	if err := uc.stageEvents(txCtx, tx, order, promotion, commissions, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return &PlaceOrderResult{
		Order:       order,
		Promotion:   promotion,
		Commissions: commissions,
	}, nil
}

// cascade walks the referrer chain from the buyer upward, crediting
// commission at each level. Level 1 pays by the referrer's affiliate
// tier; levels 2-6 pay the fixed indirect schedule. A missing referrer
// truncates the walk without failing the order.
func (uc *OrderUseCase) cascade(
	ctx context.Context,
	tx Transaction,
	buyer *domain.Account,
	orderID string,
	charge decimal.Decimal,
	now time.Time,
) ([]*domain.AffiliateTransaction, error) {
	var credited []*domain.AffiliateTransaction

	// The referral graph is assumed acyclic at signup time; the visited
	// set keeps a malformed chain from looping the walk.
	visited := map[string]bool{buyer.ID: true}

	next := buyer.ReferrerID
	for level := 1; level <= domain.MaxCascadeDepth && next != nil; level++ {
		if visited[*next] {
			break
		}
		visited[*next] = true

		referrer, err := uc.accountRepo.GetTx(ctx, tx, *next)
		if errors.Is(err, domain.ErrAccountNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}

		var pct decimal.Decimal
		if level == 1 {
			pct = uc.commissions.DirectPct(referrer.AffiliateLevel)
		} else {
			pct = uc.commissions.IndirectPct(level)
		}

		amount := domain.CommissionAmount(charge, pct)
		if amount.IsPositive() {
			referrer.AffiliateEarnings = referrer.AffiliateEarnings.Add(amount)
			referrer.UpdatedAt = now

			if err := uc.accountRepo.Update(ctx, tx, referrer); err != nil {
				return nil, err
			}

			atx := &domain.AffiliateTransaction{
				ID:         uc.idGen.Generate(),
				ReferrerID: referrer.ID,
				ReferredID: buyer.ID,
				OrderID:    orderID,
				Amount:     amount,
				Level:      level,
				CreatedAt:  now,
			}

			if err := uc.affiliateRepo.Create(ctx, tx, atx); err != nil {
				return nil, err
			}

			credited = append(credited, atx)
		}

		next = referrer.ReferrerID
	}

	return credited, nil
}

// stageEvents writes the notification payloads to the outbox inside the
// same transaction, so they become visible exactly when the order does.
func (uc *OrderUseCase) stageEvents(
	ctx context.Context,
	tx Transaction,
	order *domain.Order,
	promotion *domain.PromotionEvent,
	commissions []*domain.AffiliateTransaction,
	now time.Time,
) error {
	events := []*domain.OutboxEvent{
		{
			AggregateID:   order.ID,
			AggregateType: domain.AggregateTypeOrder,
			EventType:     domain.EventTypeOrderCreated,
			Payload: map[string]any{
				"order_id":   order.ID,
				"account_id": order.AccountID,
				"service_id": order.ServiceID,
				"charge":     order.Charge.String(),
			},
			CreatedAt: now,
		},
	}

	if promotion != nil {
		events = append(events, &domain.OutboxEvent{
			AggregateID:   promotion.AccountID,
			AggregateType: domain.AggregateTypeAccount,
			EventType:     domain.EventTypePromotion,
			Payload: map[string]any{
				"account_id": promotion.AccountID,
				"old_rank":   promotion.OldRank,
				"new_rank":   promotion.NewRank,
				"reward":     promotion.Reward,
			},
			CreatedAt: now,
		})
	}

	for _, c := range commissions {
		events = append(events, &domain.OutboxEvent{
			AggregateID:   c.ReferrerID,
			AggregateType: domain.AggregateTypeAccount,
			EventType:     domain.EventTypeCommission,
			Payload: map[string]any{
				"referrer_id": c.ReferrerID,
				"referred_id": c.ReferredID,
				"order_id":    c.OrderID,
				"amount":      c.Amount.String(),
				"level":       c.Level,
			},
			CreatedAt: now,
		})
	}

	for _, ev := range events {
		if err := uc.outboxRepo.Create(ctx, tx, ev); err != nil {
			return err
		}
	}

	return nil
}

// GetOrder retrieves an order by ID.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// ListOrdersByAccountInput represents input for listing orders.
type ListOrdersByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListOrdersByAccount lists orders for an account, newest first.
func (uc *OrderUseCase) ListOrdersByAccount(ctx context.Context, input ListOrdersByAccountInput) ([]*domain.Order, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.orderRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

func errorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrContention):
		return "contention"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "other"
	}
}
