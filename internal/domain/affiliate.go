package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxCascadeDepth is the deepest referral level the cascade will walk.
const MaxCascadeDepth = 6

// AffiliateTransaction is the immutable audit record for one commission credit.
type AffiliateTransaction struct {
	ID         string
	ReferrerID string
	ReferredID string
	OrderID    string
	Amount     decimal.Decimal
	Level      int
	CreatedAt  time.Time
}

// CommissionSchedule holds the affiliate commission percentages. Direct
// (level 1) commission depends on the referrer's affiliate tier; indirect
// levels 2-6 pay a fixed descending percentage regardless of tier.
type CommissionSchedule struct {
	directPct   map[string]decimal.Decimal
	defaultTier string
	indirectPct map[int]decimal.Decimal
}

// NewCommissionSchedule builds a schedule. defaultTier must be a key of
// directPct; unknown tiers fall back to it.
func NewCommissionSchedule(directPct map[string]decimal.Decimal, defaultTier string, indirectPct map[int]decimal.Decimal) *CommissionSchedule {
	if _, ok := directPct[defaultTier]; !ok {
		panic("default affiliate tier missing from direct schedule")
	}

	direct := make(map[string]decimal.Decimal, len(directPct))
	for k, v := range directPct {
		direct[k] = v
	}

	indirect := make(map[int]decimal.Decimal, len(indirectPct))
	for k, v := range indirectPct {
		indirect[k] = v
	}

	return &CommissionSchedule{
		directPct:   direct,
		defaultTier: defaultTier,
		indirectPct: indirect,
	}
}

// DefaultCommissionSchedule returns the production schedule. The depth-6
// entry is zero, so a full-length chain records five commissions even
// though the walk itself runs to depth six.
func DefaultCommissionSchedule() *CommissionSchedule {
	return NewCommissionSchedule(
		map[string]decimal.Decimal{
			"starter":  dec("5"),
			"bronze":   dec("8"),
			"silver":   dec("10"),
			"gold":     dec("15"),
			"platinum": dec("20"),
		},
		"starter",
		map[int]decimal.Decimal{
			2: dec("5"),
			3: dec("3"),
			4: dec("2"),
			5: dec("1"),
			6: dec("0"),
		},
	)
}

// DirectPct returns the level-1 commission percentage for a tier.
// Unknown tiers are treated as the lowest tier.
func (s *CommissionSchedule) DirectPct(tier string) decimal.Decimal {
	if pct, ok := s.directPct[tier]; ok {
		return pct
	}

	return s.directPct[s.defaultTier]
}

// IndirectPct returns the commission percentage for indirect depths 2-6.
// Depths outside that range pay nothing.
func (s *CommissionSchedule) IndirectPct(depth int) decimal.Decimal {
	if pct, ok := s.indirectPct[depth]; ok {
		return pct
	}

	return decimal.Zero
}

// CommissionAmount computes the commission for a charge at the given
// percentage, rounded to cents.
func CommissionAmount(charge, pct decimal.Decimal) decimal.Decimal {
	return charge.Mul(pct).Div(dec("100")).Round(2)
}
