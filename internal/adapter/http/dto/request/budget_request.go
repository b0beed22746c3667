package request

import (
	"strings"

	"ongeo_api/internal/domain/entities"
)

// BudgetFormRequest is the budget form as posted by the dashboard and by the
// public intake form. Numeric fields tolerate strings.
type BudgetFormRequest struct {
	ClientName            string          `json:"client_name"`
	ClientEmail           string          `json:"client_email"`
	ClientPhone           string          `json:"client_phone"`
	ClientType            string          `json:"client_type"`
	PropertyName          string          `json:"property_name"`
	PropertyType          string          `json:"property_type"`
	State                 string          `json:"state"`
	City                  string          `json:"city"`
	VerticesCount         entities.Amount `json:"vertices_count"`
	PropertyArea          entities.Amount `json:"property_area"`
	ServiceType           string          `json:"service_type"`
	IsUrgent              bool            `json:"is_urgent"`
	IncludesTopography    bool            `json:"includes_topography"`
	IncludesEnvironmental bool            `json:"includes_environmental"`
	AdditionalNotes       string          `json:"additional_notes"`
}

// ToDomain normalises the numeric fields: vertices_count is truncated to an
// integer and property_area kept as a float.
func (r BudgetFormRequest) ToDomain() entities.BudgetRequest {
	return entities.BudgetRequest{
		ClientName:            r.ClientName,
		ClientEmail:           r.ClientEmail,
		ClientPhone:           r.ClientPhone,
		ClientType:            entities.ClientType(strings.TrimSpace(r.ClientType)),
		PropertyName:          r.PropertyName,
		PropertyType:          r.PropertyType,
		State:                 r.State,
		City:                  r.City,
		VerticesCount:         int(r.VerticesCount.Float64()),
		PropertyArea:          r.PropertyArea.Float64(),
		ServiceType:           r.ServiceType,
		IsUrgent:              r.IsUrgent,
		IncludesTopography:    r.IncludesTopography,
		IncludesEnvironmental: r.IncludesEnvironmental,
		AdditionalNotes:       r.AdditionalNotes,
	}
}

// CreateBudgetRequest creates a budget, optionally for an existing client.
type CreateBudgetRequest struct {
	BudgetFormRequest
	ClientID string `json:"client_id"`
}

type CustomLinkRequest struct {
	CustomLink string `json:"custom_link" binding:"required"`
}

type RejectBudgetRequest struct {
	Comment string `json:"comment"`
}

// BudgetTotalsRequest carries the session-only additional items.
type BudgetTotalsRequest struct {
	AdditionalItems []entities.AdditionalItem `json:"additional_items"`
}

// PublicBudgetRequest is posted by the public intake form.
type PublicBudgetRequest struct {
	BudgetFormRequest
	Slug string `json:"slug" binding:"required"`
}
