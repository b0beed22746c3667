package response

import "ongeo_api/internal/domain/entities"

type FormLinkResponse struct {
	Success  bool                    `json:"success"`
	FormLink entities.BudgetFormLink `json:"form_link"`
}

// PublicFormLink is what the intake form needs; owner and counters stay
// private.
type PublicFormLink struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	CustomMessage string `json:"custom_message,omitempty"`
	PrimaryColor  string `json:"primary_color"`
}

type PublicFormLinkResponse struct {
	Success  bool           `json:"success"`
	FormLink PublicFormLink `json:"form_link"`
}

func FromPublicFormLink(l entities.BudgetFormLink) PublicFormLinkResponse {
	color := l.PrimaryColor
	if color == "" {
		color = entities.DefaultPrimaryColor
	}
	return PublicFormLinkResponse{
		Success: true,
		FormLink: PublicFormLink{
			ID:            l.ID,
			Slug:          l.Slug,
			Title:         l.Title,
			Description:   l.Description,
			CustomMessage: l.CustomMessage,
			PrimaryColor:  color,
		},
	}
}

type PublicRequestData struct {
	CustomLink string `json:"custom_link"`
}

type PublicRequestResponse struct {
	Success bool              `json:"success"`
	Data    PublicRequestData `json:"data"`
	Message string            `json:"message,omitempty"`
}
