package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType is the fixed taxonomy used to group budget items.
type ItemType string

const (
	ItemTypeServicoGeo   ItemType = "servico_geo"
	ItemTypeInsumo       ItemType = "insumo"
	ItemTypeDeslocamento ItemType = "deslocamento"
	ItemTypeHospedagem   ItemType = "hospedagem"
	ItemTypeAlimentacao  ItemType = "alimentacao"
	ItemTypeOutros       ItemType = "outros"
)

// ItemTypes lists the taxonomy in display order.
var ItemTypes = []ItemType{
	ItemTypeServicoGeo,
	ItemTypeInsumo,
	ItemTypeDeslocamento,
	ItemTypeHospedagem,
	ItemTypeAlimentacao,
	ItemTypeOutros,
}

var itemTypeLabels = map[ItemType]string{
	ItemTypeServicoGeo:   "Serviços de Georreferenciamento",
	ItemTypeInsumo:       "Insumos",
	ItemTypeDeslocamento: "Deslocamento",
	ItemTypeHospedagem:   "Hospedagem",
	ItemTypeAlimentacao:  "Alimentação",
	ItemTypeOutros:       "Outros",
}

func (t ItemType) Valid() bool {
	_, ok := itemTypeLabels[t]
	return ok
}

// Label is the pt-BR display name of the bucket.
func (t ItemType) Label() string {
	if l, ok := itemTypeLabels[t]; ok {
		return l
	}
	return itemTypeLabels[ItemTypeOutros]
}

// LineTotal returns quantity * unit price.
func LineTotal(quantity, unitPrice Amount) Amount {
	d := quantity.Decimal().Mul(unitPrice.Decimal())
	return Amount(d.InexactFloat64())
}

// LineTotalDecimal is LineTotal without the float round trip.
func LineTotalDecimal(quantity, unitPrice Amount) decimal.Decimal {
	return quantity.Decimal().Mul(unitPrice.Decimal())
}

// BudgetItem is a persisted line item of a budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (budget_id-index): budget_id / created_at
//
// TotalPrice is stored, always computed from Quantity and UnitPrice on write.
type BudgetItem struct {
	ID          string    `json:"id"`
	BudgetID    string    `json:"budget_id"`
	ItemType    ItemType  `json:"item_type"`
	Description string    `json:"description"`
	Quantity    Amount    `json:"quantity"`
	Unit        string    `json:"unit"`
	UnitPrice   Amount    `json:"unit_price"`
	TotalPrice  Amount    `json:"total_price"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdditionalItem is a line item that only lives in the caller's session.
// It is never written to storage; it only takes part in display totals.
type AdditionalItem struct {
	Description string `json:"description"`
	Quantity    Amount `json:"quantity"`
	Unit        string `json:"unit,omitempty"`
	UnitPrice   Amount `json:"unit_price"`
	TotalPrice  Amount `json:"total_price"`
	Notes       string `json:"notes,omitempty"`
}

// Total is quantity * unit price. A total_price sent by the caller is
// ignored, same as for persisted items.
func (a AdditionalItem) Total() decimal.Decimal {
	return LineTotalDecimal(a.Quantity, a.UnitPrice)
}

// WithLineTotals returns a copy of items with TotalPrice recomputed.
func WithLineTotals(items []AdditionalItem) []AdditionalItem {
	if items == nil {
		return nil
	}
	out := make([]AdditionalItem, len(items))
	for i, it := range items {
		it.TotalPrice = LineTotal(it.Quantity, it.UnitPrice)
		out[i] = it
	}
	return out
}

// BudgetItemTemplate is a reusable preset used to prefill new items.
type BudgetItemTemplate struct {
	ID          string   `json:"id"`
	ItemType    ItemType `json:"item_type"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	UnitPrice   Amount   `json:"unit_price"`
	IsActive    bool     `json:"is_active"`
}
