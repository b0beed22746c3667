package response

import (
	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase"
)

type BudgetItemResponse struct {
	Success bool                `json:"success"`
	Item    entities.BudgetItem `json:"item"`
}

type ItemOverlayResponse struct {
	Success bool                  `json:"success"`
	Items   []entities.BudgetItem `json:"items"`
	Groups  []ItemGroupResponse   `json:"groups"`
	Total   MoneyResponse         `json:"total"`
}

func FromItemOverlay(o usecase.ItemOverlay) ItemOverlayResponse {
	items := o.Items
	if items == nil {
		items = []entities.BudgetItem{}
	}
	return ItemOverlayResponse{
		Success: true,
		Items:   items,
		Groups:  FromItemGroups(o.Groups),
		Total:   FromDecimal(o.Total),
	}
}

type TemplatesResponse struct {
	Success   bool                          `json:"success"`
	Templates []entities.BudgetItemTemplate `json:"templates"`
}
