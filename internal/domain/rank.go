package domain

import "github.com/shopspring/decimal"

// Rank is one row of the loyalty table.
type Rank struct {
	Name            string
	MinSpend        decimal.Decimal
	DiscountPct     decimal.Decimal
	PromotionReward decimal.Decimal
}

// RankTable maps cumulative spend to loyalty ranks. Rows are sorted
// ascending by MinSpend and the table is immutable after construction.
type RankTable struct {
	ranks []Rank
}

// NewRankTable builds a table from rows sorted ascending by MinSpend.
// The first row must have MinSpend zero so every spend value resolves.
func NewRankTable(ranks []Rank) *RankTable {
	if len(ranks) == 0 || !ranks[0].MinSpend.IsZero() {
		panic("rank table must start at zero spend")
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i].MinSpend.LessThanOrEqual(ranks[i-1].MinSpend) {
			panic("rank table thresholds must be strictly ascending")
		}
	}

	copied := make([]Rank, len(ranks))
	copy(copied, ranks)

	return &RankTable{ranks: copied}
}

// DefaultRankTable returns the production loyalty table.
func DefaultRankTable() *RankTable {
	return NewRankTable([]Rank{
		{Name: "newbie", MinSpend: dec("0"), DiscountPct: dec("0"), PromotionReward: dec("0")},
		{Name: "junior", MinSpend: dec("50"), DiscountPct: dec("1"), PromotionReward: dec("1")},
		{Name: "specialist", MinSpend: dec("250"), DiscountPct: dec("2"), PromotionReward: dec("5")},
		{Name: "expert", MinSpend: dec("1000"), DiscountPct: dec("3"), PromotionReward: dec("15")},
		{Name: "master", MinSpend: dec("5000"), DiscountPct: dec("5"), PromotionReward: dec("50")},
		{Name: "legend", MinSpend: dec("25000"), DiscountPct: dec("7"), PromotionReward: dec("200")},
	})
}

// RankFor returns the highest rank whose threshold is covered by totalSpent.
// Pure lookup, safe to call outside any transaction.
func (t *RankTable) RankFor(totalSpent decimal.Decimal) Rank {
	current := t.ranks[0]
	for _, r := range t.ranks[1:] {
		if totalSpent.LessThan(r.MinSpend) {
			break
		}
		current = r
	}

	return current
}

// Ranks returns a copy of the table rows for display.
func (t *RankTable) Ranks() []Rank {
	out := make([]Rank, len(t.ranks))
	copy(out, t.ranks)

	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
