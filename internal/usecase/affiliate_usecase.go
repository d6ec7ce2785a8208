package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/glowpanel/engine/internal/domain"
)

// AffiliateUseCase handles affiliate reporting.
type AffiliateUseCase struct {
	accountRepo   AccountRepository
	affiliateRepo AffiliateRepository
}

// NewAffiliateUseCase creates a new AffiliateUseCase.
func NewAffiliateUseCase(accountRepo AccountRepository, affiliateRepo AffiliateRepository) *AffiliateUseCase {
	return &AffiliateUseCase{
		accountRepo:   accountRepo,
		affiliateRepo: affiliateRepo,
	}
}

// ListCommissionsInput represents input for listing commission records.
type ListCommissionsInput struct {
	ReferrerID string
	Limit      int
	Offset     int
}

// ListCommissions lists commission audit records for a referrer.
func (uc *AffiliateUseCase) ListCommissions(ctx context.Context, input ListCommissionsInput) ([]*domain.AffiliateTransaction, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.affiliateRepo.ListByReferrer(ctx, input.ReferrerID, input.Limit, input.Offset)
}

// EarningsSummary reports an account's affiliate standing.
type EarningsSummary struct {
	AccountID      string
	AffiliateLevel string
	Earnings       decimal.Decimal
}

// GetEarnings returns the affiliate earnings summary for an account.
func (uc *AffiliateUseCase) GetEarnings(ctx context.Context, accountID string) (*EarningsSummary, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &EarningsSummary{
		AccountID:      account.ID,
		AffiliateLevel: account.AffiliateLevel,
		Earnings:       account.AffiliateEarnings,
	}, nil
}
