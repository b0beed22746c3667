package request

import (
	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase"
)

type BudgetItemRequest struct {
	ItemType    string          `json:"item_type"`
	Description string          `json:"description" binding:"required"`
	Quantity    entities.Amount `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   entities.Amount `json:"unit_price"`
	Notes       string          `json:"notes"`
}

func (r BudgetItemRequest) ToInput() usecase.BudgetItemInput {
	return usecase.BudgetItemInput{
		ItemType:    entities.ItemType(r.ItemType),
		Description: r.Description,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		UnitPrice:   r.UnitPrice,
		Notes:       r.Notes,
	}
}
