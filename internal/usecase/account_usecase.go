package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowpanel/engine/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	txManager   TransactionManager
	retrier     Retrier
	accountRepo AccountRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	ranks       *domain.RankTable
	cache       Cache
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	txManager TransactionManager,
	retrier Retrier,
	accountRepo AccountRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	ranks *domain.RankTable,
	cache Cache,
) *AccountUseCase {
	return &AccountUseCase{
		txManager:   txManager,
		retrier:     retrier,
		accountRepo: accountRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
		ranks:       ranks,
		cache:       cache,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Email      string
	ReferrerID *string
}

// CreateAccount creates a new account with all accumulators at zero.
// The referrer is set exactly once here and never changes afterwards.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if input.ReferrerID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *input.ReferrerID); err != nil {
			if err == domain.ErrAccountNotFound {
				return nil, domain.ErrReferrerNotFound
			}

			return nil, err
		}
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:                uc.idGen.Generate(),
		Email:             input.Email,
		Balance:           decimal.Zero,
		AdBalance:         decimal.Zero,
		TotalSpent:        decimal.Zero,
		Rank:              uc.ranks.RankFor(decimal.Zero).Name,
		AffiliateLevel:    "starter",
		AffiliateEarnings: decimal.Zero,
		ReferrerID:        input.ReferrerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// AccountOverview is the display projection of an account, including
// the rank row derived from cumulative spend.
type AccountOverview struct {
	Account *domain.Account
	Rank    domain.Rank
}

// GetOverview returns an account with its rank details for display.
// Reads may be served from a short-lived cache; the transactional path
// never goes through here.
func (uc *AccountUseCase) GetOverview(ctx context.Context, id string) (*AccountOverview, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, overviewCacheKey(id)); err == nil && cached != "" {
			var account domain.Account
			if err := json.Unmarshal([]byte(cached), &account); err == nil {
				return &AccountOverview{
					Account: &account,
					Rank:    uc.ranks.RankFor(account.TotalSpent),
				}, nil
			}
		}
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(account); err == nil {
			_ = uc.cache.Set(ctx, overviewCacheKey(id), string(data), DisplayCacheTTL)
		}
	}

	return &AccountOverview{
		Account: account,
		Rank:    uc.ranks.RankFor(account.TotalSpent),
	}, nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// WithdrawEarnings moves affiliate earnings into the spendable balance
// as one atomic transaction.
func (uc *AccountUseCase) WithdrawEarnings(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	min := decimal.RequireFromString(MinWithdrawalAmount)
	if amount.LessThan(min) {
		return nil, domain.ErrWithdrawalTooSmall
	}

	var account *domain.Account

	err := uc.retrier.Retry(ctx, func() error {
		var attemptErr error
		account, attemptErr = uc.withdrawTx(ctx, accountID, amount)

		return attemptErr
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (uc *AccountUseCase) withdrawTx(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	account, err := uc.accountRepo.GetTx(txCtx, tx, accountID)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateWithdrawal(amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account.AffiliateEarnings = account.AffiliateEarnings.Sub(amount)
	account.Balance = account.Balance.Add(amount)
	account.UpdatedAt = now

	if err := uc.accountRepo.Update(txCtx, tx, account); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		AggregateID:   account.ID,
		AggregateType: domain.AggregateTypeAccount,
		EventType:     domain.EventTypeEarningsWithdrawal,
		Payload: map[string]any{
			"account_id": account.ID,
			"amount":     amount.String(),
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return account, nil
}

func overviewCacheKey(id string) string {
	return "account:overview:" + id
}
