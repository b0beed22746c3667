// Package pricing derives the money figures shown for a budget.
//
// A budget has up to three independent cost views: the calculator breakdown,
// the persisted item overlay and the legacy top-level totals. They are not
// reconciled with each other; DisplayTotal picks one of them by a fixed
// precedence and reports which one it used.
package pricing

import (
	"ongeo_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Provenance tells where a display total came from.
type Provenance string

const (
	ProvenanceCalculated Provenance = "calculated"
	ProvenanceItemized   Provenance = "itemized"
	ProvenanceRecorded   Provenance = "recorded"
	ProvenanceNone       Provenance = "none"
)

// Money is an amount tagged with its provenance.
type Money struct {
	Amount     decimal.Decimal
	Provenance Provenance
}

// Formatted renders the amount as Brazilian Real.
func (m Money) Formatted() string { return FormatBRL(m.Amount) }

// BreakdownTotal sums every breakdown line, discounts included.
func BreakdownTotal(lines []entities.BreakdownLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Value.Decimal())
	}
	return sum
}

// ItemsTotal is the grand total of the item overlay.
func ItemsTotal(items []entities.BudgetItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalPrice.Decimal())
	}
	return sum
}

// AdditionalTotal sums session-only items.
func AdditionalTotal(items []entities.AdditionalItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// DisplayTotal resolves the single total shown for a budget.
//
// Precedence: non-empty breakdown, then persisted items, then the first
// recorded total (budget_result.total_price, budget_result.total_cost,
// total_price, total). Additional items are always added on top.
func DisplayTotal(b entities.Budget, items []entities.BudgetItem, additional []entities.AdditionalItem) Money {
	extra := AdditionalTotal(additional)

	if len(b.Result.Breakdown) > 0 {
		return Money{Amount: BreakdownTotal(b.Result.Breakdown).Add(extra), Provenance: ProvenanceCalculated}
	}
	if len(items) > 0 {
		return Money{Amount: ItemsTotal(items).Add(extra), Provenance: ProvenanceItemized}
	}
	if base, ok := recordedTotal(b); ok {
		return Money{Amount: base.Add(extra), Provenance: ProvenanceRecorded}
	}
	return Money{Amount: extra, Provenance: ProvenanceNone}
}

func recordedTotal(b entities.Budget) (decimal.Decimal, bool) {
	for _, v := range []*entities.Amount{b.Result.TotalPrice, b.Result.TotalCost, b.TotalPrice, b.Total} {
		if v != nil {
			return v.Decimal(), true
		}
	}
	return decimal.Zero, false
}
