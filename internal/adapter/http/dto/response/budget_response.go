package response

import (
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/domain/pricing"
	"ongeo_api/internal/usecase"
)

type SuccessResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail,omitempty"`
}

type BudgetResponse struct {
	Success bool            `json:"success"`
	Budget  entities.Budget `json:"budget"`
}

type BudgetListResponse struct {
	Success bool              `json:"success"`
	Budgets []entities.Budget `json:"budgets"`
	Count   int               `json:"count"`
}

type CustomLinkResponse struct {
	Success    bool   `json:"success"`
	CustomLink string `json:"custom_link"`
}

type CalculateResponse struct {
	Success bool `json:"success"`
	entities.BudgetResult
}

type ItemGroupResponse struct {
	ItemType entities.ItemType     `json:"item_type"`
	Label    string                `json:"label"`
	Items    []entities.BudgetItem `json:"items"`
	Subtotal MoneyResponse         `json:"subtotal"`
}

func FromItemGroups(groups []pricing.ItemGroup) []ItemGroupResponse {
	out := make([]ItemGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ItemGroupResponse{
			ItemType: g.Type,
			Label:    g.Label,
			Items:    g.Items,
			Subtotal: FromDecimal(g.Subtotal),
		})
	}
	return out
}

// BudgetTotalsResponse shows the display total next to the item overlay
// total; both are reported as is even when they differ.
type BudgetTotalsResponse struct {
	Success         bool                `json:"success"`
	Total           MoneyResponse       `json:"total"`
	ItemsTotal      MoneyResponse       `json:"items_total"`
	AdditionalTotal MoneyResponse       `json:"additional_total"`
	Groups          []ItemGroupResponse `json:"groups"`
}

func FromBudgetTotals(t usecase.BudgetTotals) BudgetTotalsResponse {
	return BudgetTotalsResponse{
		Success:         true,
		Total:           FromMoney(t.Display),
		ItemsTotal:      FromDecimal(t.ItemsTotal),
		AdditionalTotal: FromDecimal(t.AdditionalTotal),
		Groups:          FromItemGroups(t.Groups),
	}
}

// PublicBudget is the read-only quote shown through the public link.
type PublicBudget struct {
	ID               string                 `json:"id"`
	Request          entities.BudgetRequest `json:"budget_request"`
	Result           entities.BudgetResult  `json:"budget_result"`
	Status           entities.BudgetStatus  `json:"status"`
	CustomLink       string                 `json:"custom_link"`
	Total            MoneyResponse          `json:"total"`
	CreatedAt        time.Time              `json:"created_at"`
	ApprovalDate     *time.Time             `json:"approval_date,omitempty"`
	RejectionDate    *time.Time             `json:"rejection_date,omitempty"`
	RejectionComment string                 `json:"rejection_comment,omitempty"`
}

type PublicBudgetResponse struct {
	Success bool         `json:"success"`
	Budget  PublicBudget `json:"budget"`
}

func FromPublicBudget(b entities.Budget) PublicBudgetResponse {
	return PublicBudgetResponse{
		Success: true,
		Budget: PublicBudget{
			ID:               b.ID,
			Request:          b.Request,
			Result:           b.Result,
			Status:           b.Status,
			CustomLink:       b.CustomLink,
			Total:            FromMoney(pricing.DisplayTotal(b, nil, nil)),
			CreatedAt:        b.CreatedAt,
			ApprovalDate:     b.ApprovalDate,
			RejectionDate:    b.RejectionDate,
			RejectionComment: b.RejectionComment,
		},
	}
}
