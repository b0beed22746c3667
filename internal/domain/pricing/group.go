package pricing

import (
	"ongeo_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ItemGroup is one bucket of the item overlay.
type ItemGroup struct {
	Type     entities.ItemType
	Label    string
	Items    []entities.BudgetItem
	Subtotal decimal.Decimal
}

// GroupItems buckets items by type in taxonomy order. Empty buckets are
// omitted and unknown types land in "outros". Item order inside a bucket is
// preserved.
func GroupItems(items []entities.BudgetItem) ([]ItemGroup, decimal.Decimal) {
	byType := make(map[entities.ItemType][]entities.BudgetItem, len(entities.ItemTypes))
	for _, it := range items {
		t := it.ItemType
		if !t.Valid() {
			t = entities.ItemTypeOutros
		}
		byType[t] = append(byType[t], it)
	}

	groups := make([]ItemGroup, 0, len(byType))
	grand := decimal.Zero
	for _, t := range entities.ItemTypes {
		bucket := byType[t]
		if len(bucket) == 0 {
			continue
		}
		sub := ItemsTotal(bucket)
		grand = grand.Add(sub)
		groups = append(groups, ItemGroup{Type: t, Label: t.Label(), Items: bucket, Subtotal: sub})
	}
	return groups, grand
}
