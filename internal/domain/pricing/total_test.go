package pricing

import (
	"testing"

	"ongeo_api/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func amt(v float64) *entities.Amount { return entities.AmountPtr(v) }

func item(t entities.ItemType, qty, price float64) entities.BudgetItem {
	q, p := entities.Amount(qty), entities.Amount(price)
	return entities.BudgetItem{ItemType: t, Description: string(t), Quantity: q, UnitPrice: p, TotalPrice: entities.LineTotal(q, p)}
}

func TestDisplayTotal_Precedence(t *testing.T) {
	breakdown := []entities.BreakdownLine{{Item: "Base", Value: 1600}, {Item: "Urgência", Value: 300}}
	items := []entities.BudgetItem{item(entities.ItemTypeInsumo, 2, 100), item(entities.ItemTypeHospedagem, 1, 300)}
	additional := []entities.AdditionalItem{{Description: "Taxa cartório", Quantity: 1, UnitPrice: 25, TotalPrice: 25}}

	t.Run("breakdown wins over items and recorded totals", func(t *testing.T) {
		b := entities.Budget{Result: entities.BudgetResult{TotalPrice: amt(9999), Breakdown: breakdown}, Total: amt(1)}
		got := DisplayTotal(b, items, additional)
		assert.Equal(t, ProvenanceCalculated, got.Provenance)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(1925)), got.Amount.String())
	})

	t.Run("items when there is no breakdown", func(t *testing.T) {
		b := entities.Budget{Result: entities.BudgetResult{TotalPrice: amt(9999)}}
		got := DisplayTotal(b, items, additional)
		assert.Equal(t, ProvenanceItemized, got.Provenance)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(525)), got.Amount.String())
	})

	t.Run("recorded cascade", func(t *testing.T) {
		cases := []struct {
			name string
			b    entities.Budget
			want int64
		}{
			{"result total_price", entities.Budget{Result: entities.BudgetResult{TotalPrice: amt(700), TotalCost: amt(1)}, TotalPrice: amt(2), Total: amt(3)}, 700},
			{"result total_cost", entities.Budget{Result: entities.BudgetResult{TotalCost: amt(650)}, TotalPrice: amt(2), Total: amt(3)}, 650},
			{"top-level total_price", entities.Budget{TotalPrice: amt(600), Total: amt(3)}, 600},
			{"top-level total", entities.Budget{Total: amt(550)}, 550},
		}
		for _, tc := range cases {
			got := DisplayTotal(tc.b, nil, nil)
			assert.Equal(t, ProvenanceRecorded, got.Provenance, tc.name)
			assert.True(t, got.Amount.Equal(decimal.NewFromInt(tc.want)), "%s: %s", tc.name, got.Amount)
		}
	})

	t.Run("nothing recorded", func(t *testing.T) {
		got := DisplayTotal(entities.Budget{}, nil, additional)
		assert.Equal(t, ProvenanceNone, got.Provenance)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(25)))
	})

	t.Run("empty breakdown falls through", func(t *testing.T) {
		b := entities.Budget{Result: entities.BudgetResult{Breakdown: []entities.BreakdownLine{}, TotalPrice: amt(10)}}
		assert.Equal(t, ProvenanceRecorded, DisplayTotal(b, nil, nil).Provenance)
	})
}

func TestDisplayTotal_DivergesFromItemOverlay(t *testing.T) {
	b := entities.Budget{Result: entities.BudgetResult{
		TotalPrice: amt(1900),
		Breakdown:  []entities.BreakdownLine{{Item: "Base", Value: 1600}, {Item: "Urgência", Value: 300}},
	}}
	items := []entities.BudgetItem{item(entities.ItemTypeInsumo, 1, 200), item(entities.ItemTypeDeslocamento, 3, 100)}

	detail := DisplayTotal(b, items, nil)
	_, overlay := GroupItems(items)

	assert.True(t, detail.Amount.Equal(decimal.NewFromInt(1900)))
	assert.True(t, overlay.Equal(decimal.NewFromInt(500)))
	assert.False(t, detail.Amount.Equal(overlay), "the two views are not reconciled")
}

func TestBreakdownTotal_Discounts(t *testing.T) {
	lines := []entities.BreakdownLine{{Item: "Base", Value: 2000}, {Item: "Desconto", Value: -300}}
	assert.True(t, lines[1].IsDiscount())
	assert.False(t, lines[0].IsDiscount())
	assert.True(t, BreakdownTotal(lines).Equal(decimal.NewFromInt(1700)))
}

func TestGroupItems(t *testing.T) {
	items := []entities.BudgetItem{
		item(entities.ItemTypeOutros, 1, 10),
		item(entities.ItemTypeServicoGeo, 1, 1000),
		item("desconhecido", 2, 5),
		item(entities.ItemTypeServicoGeo, 2, 50),
	}
	groups, grand := GroupItems(items)
	require.Len(t, groups, 2)

	assert.Equal(t, entities.ItemTypeServicoGeo, groups[0].Type)
	assert.Equal(t, "Serviços de Georreferenciamento", groups[0].Label)
	assert.Len(t, groups[0].Items, 2)
	assert.True(t, groups[0].Subtotal.Equal(decimal.NewFromInt(1100)))

	assert.Equal(t, entities.ItemTypeOutros, groups[1].Type)
	assert.True(t, groups[1].Subtotal.Equal(decimal.NewFromInt(20)))
	assert.True(t, grand.Equal(decimal.NewFromInt(1120)))

	empty, zero := GroupItems(nil)
	assert.Empty(t, empty)
	assert.True(t, zero.IsZero())
}

func genAmount(t *rapid.T, label string, min, max int64) entities.Amount {
	cents := rapid.Int64Range(min, max).Draw(t, label)
	return entities.Amount(decimal.New(cents, -2).InexactFloat64())
}

func genItems(t *rapid.T) []entities.BudgetItem {
	n := rapid.IntRange(0, 8).Draw(t, "items")
	out := make([]entities.BudgetItem, n)
	for i := range out {
		q := genAmount(t, "qty", 1, 100000)
		p := genAmount(t, "price", 0, 10000000)
		ty := rapid.SampledFrom(entities.ItemTypes).Draw(t, "type")
		out[i] = entities.BudgetItem{ItemType: ty, Quantity: q, UnitPrice: p, TotalPrice: entities.LineTotal(q, p)}
	}
	return out
}

func genAdditional(t *rapid.T) []entities.AdditionalItem {
	n := rapid.IntRange(0, 4).Draw(t, "additional")
	out := make([]entities.AdditionalItem, n)
	for i := range out {
		v := genAmount(t, "extra", 0, 1000000)
		out[i] = entities.AdditionalItem{Quantity: 1, UnitPrice: v, TotalPrice: v}
	}
	return out
}

func TestProperty_BreakdownDrivesDisplayTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "lines")
		lines := make([]entities.BreakdownLine, n)
		want := decimal.Zero
		for i := range lines {
			v := genAmount(t, "value", -500000, 5000000)
			lines[i] = entities.BreakdownLine{Item: "l", Value: v}
			want = want.Add(v.Decimal())
		}
		additional := genAdditional(t)
		for _, a := range additional {
			want = want.Add(a.TotalPrice.Decimal())
		}

		b := entities.Budget{Result: entities.BudgetResult{Breakdown: lines, TotalPrice: amt(1)}}
		got := DisplayTotal(b, genItems(t), additional)
		if got.Provenance != ProvenanceCalculated || !got.Amount.Equal(want) {
			t.Fatalf("got %s (%s), want %s", got.Amount, got.Provenance, want)
		}
	})
}

func TestProperty_ItemsDriveDisplayTotalWithoutBreakdown(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := genItems(t)
		if len(items) == 0 {
			items = append(items, entities.BudgetItem{Quantity: 1, UnitPrice: 1, TotalPrice: 1})
		}
		additional := genAdditional(t)
		want := ItemsTotal(items).Add(AdditionalTotal(additional))

		got := DisplayTotal(entities.Budget{Total: amt(42)}, items, additional)
		if got.Provenance != ProvenanceItemized || !got.Amount.Equal(want) {
			t.Fatalf("got %s (%s), want %s", got.Amount, got.Provenance, want)
		}
	})
}

func TestProperty_LineTotalIsQuantityTimesUnitPrice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := rapid.Float64Range(0, 1e6).Draw(t, "qty")
		p := rapid.Float64Range(0, 1e6).Draw(t, "price")
		got := entities.LineTotal(entities.Amount(q), entities.Amount(p)).Float64()
		want := q * p
		tol := 1e-9 * max(1, want)
		if diff := got - want; diff > tol || diff < -tol {
			t.Fatalf("LineTotal(%v, %v) = %v, want %v", q, p, got, want)
		}
	})
}

func TestProperty_GroupedGrandTotalEqualsItemsTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := genItems(t)
		groups, grand := GroupItems(items)
		if !grand.Equal(ItemsTotal(items)) {
			t.Fatalf("grand %s != items %s", grand, ItemsTotal(items))
		}
		count := 0
		for _, g := range groups {
			if len(g.Items) == 0 {
				t.Fatalf("empty group %s", g.Type)
			}
			count += len(g.Items)
		}
		if count != len(items) {
			t.Fatalf("grouped %d of %d items", count, len(items))
		}
	})
}
