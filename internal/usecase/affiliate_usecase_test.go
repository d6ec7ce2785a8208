package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/usecase"
	"github.com/glowpanel/engine/internal/usecase/mocks"
)

func TestAffiliateUseCase_ListCommissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	affiliateRepo := mocks.NewGoMockAffiliateRepository(ctrl)
	affiliateRepo.EXPECT().ListByReferrer(gomock.Any(), "ref-1", 10, 0).Return([]*domain.AffiliateTransaction{
		{ID: "at-1", ReferrerID: "ref-1", Level: 1, Amount: decimal.NewFromInt(15)},
		{ID: "at-2", ReferrerID: "ref-1", Level: 2, Amount: decimal.NewFromInt(5)},
	}, nil)

	uc := usecase.NewAffiliateUseCase(nil, affiliateRepo)

	records, err := uc.ListCommissions(context.Background(), usecase.ListCommissionsInput{
		ReferrerID: "ref-1",
		Limit:      10,
		Offset:     0,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestAffiliateUseCase_ListCommissionsClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	affiliateRepo := mocks.NewGoMockAffiliateRepository(ctrl)
	affiliateRepo.EXPECT().ListByReferrer(gomock.Any(), "ref-1", 100, 0).Return(nil, nil)

	uc := usecase.NewAffiliateUseCase(nil, affiliateRepo)

	_, err := uc.ListCommissions(context.Background(), usecase.ListCommissionsInput{
		ReferrerID: "ref-1",
		Limit:      5000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAffiliateUseCase_GetEarnings(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	accountRepo.Seed(&domain.Account{
		ID:                "acc-1",
		AffiliateLevel:    "gold",
		AffiliateEarnings: decimal.NewFromInt(120),
	})

	uc := usecase.NewAffiliateUseCase(accountRepo, nil)

	summary, err := uc.GetEarnings(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.AffiliateLevel != "gold" {
		t.Errorf("expected tier gold, got %s", summary.AffiliateLevel)
	}
	if !summary.Earnings.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected earnings 120, got %s", summary.Earnings)
	}
}
