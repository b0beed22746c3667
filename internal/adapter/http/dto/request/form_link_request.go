package request

import "ongeo_api/internal/usecase"

type FormLinkRequest struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CustomMessage string `json:"custom_message"`
	PrimaryColor  string `json:"primary_color"`
}

func (r FormLinkRequest) ToInput() usecase.FormLinkInput {
	return usecase.FormLinkInput{
		Slug:          r.Slug,
		Title:         r.Title,
		Description:   r.Description,
		CustomMessage: r.CustomMessage,
		PrimaryColor:  r.PrimaryColor,
	}
}

type FormLinkActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
