package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a panel user's ledger state.
type Account struct {
	ID                string
	Email             string
	Balance           decimal.Decimal
	AdBalance         decimal.Decimal
	TotalSpent        decimal.Decimal
	Rank              string
	AffiliateLevel    string
	AffiliateEarnings decimal.Decimal
	ReferrerID        *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidateDebit checks if the spendable balance covers amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after debiting amount.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplySpend returns the cumulative spend after adding amount.
func (a *Account) ApplySpend(amount decimal.Decimal) decimal.Decimal {
	return a.TotalSpent.Add(amount)
}

// ValidateWithdrawal checks if affiliate earnings cover amount.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if a.AffiliateEarnings.LessThan(amount) {
		return ErrInsufficientEarnings
	}
	return nil
}
