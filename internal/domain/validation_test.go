package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/glowpanel/engine/internal/domain"
)

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		wantErr bool
	}{
		{"valid https", "https://example.com/profile", false},
		{"valid http", "http://example.com", false},
		{"empty", "", true},
		{"no scheme", "example.com/profile", true},
		{"bad scheme", "ftp://example.com", true},
		{"missing host", "https://", true},
		{"too long", "https://example.com/" + strings.Repeat("a", domain.MaxLinkLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateLink(tt.link)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLink(%q) error = %v, wantErr %v", tt.link, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidLink) {
				t.Errorf("error should wrap ErrInvalidLink, got %v", err)
			}
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	if err := domain.ValidateQuantity(1); err != nil {
		t.Errorf("quantity 1 should pass, got %v", err)
	}

	if err := domain.ValidateQuantity(0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("quantity 0 should fail with ErrInvalidQuantity, got %v", err)
	}

	if err := domain.ValidateQuantity(domain.MaxQuantity + 1); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("oversized quantity should fail, got %v", err)
	}
}

func TestValidateCharge(t *testing.T) {
	if err := domain.ValidateCharge(decimal.RequireFromString("0.01")); err != nil {
		t.Errorf("small positive charge should pass, got %v", err)
	}

	if err := domain.ValidateCharge(decimal.Zero); !errors.Is(err, domain.ErrInvalidCharge) {
		t.Errorf("zero charge should fail, got %v", err)
	}

	if err := domain.ValidateCharge(decimal.NewFromInt(-5)); !errors.Is(err, domain.ErrInvalidCharge) {
		t.Errorf("negative charge should fail, got %v", err)
	}

	huge := decimal.RequireFromString(domain.MaxCharge).Add(decimal.NewFromInt(1))
	if err := domain.ValidateCharge(huge); !errors.Is(err, domain.ErrChargeTooLarge) {
		t.Errorf("huge charge should fail with ErrChargeTooLarge, got %v", err)
	}
}

func TestOrderValidate(t *testing.T) {
	valid := &domain.Order{
		ServiceID: "svc-1",
		Link:      "https://example.com/p",
		Quantity:  100,
		Charge:    decimal.NewFromInt(5),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid order should pass, got %v", err)
	}

	noCharge := *valid
	noCharge.Charge = decimal.Zero
	if err := noCharge.Validate(); !errors.Is(err, domain.ErrInvalidCharge) {
		t.Errorf("expected ErrInvalidCharge, got %v", err)
	}

	noService := *valid
	noService.ServiceID = "  "
	if err := noService.Validate(); !errors.Is(err, domain.ErrInvalidServiceID) {
		t.Errorf("expected ErrInvalidServiceID, got %v", err)
	}
}
