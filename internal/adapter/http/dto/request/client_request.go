package request

import (
	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase"
)

type ClientRequest struct {
	Name           string           `json:"name" binding:"required"`
	Email          string           `json:"email" binding:"required"`
	Phone          string           `json:"phone"`
	SecondaryPhone string           `json:"secondary_phone"`
	ClientType     string           `json:"client_type"`
	Document       string           `json:"document"`
	CompanyName    string           `json:"company_name"`
	Address        entities.Address `json:"address"`
	Website        string           `json:"website"`
	Notes          string           `json:"notes"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		SecondaryPhone: r.SecondaryPhone,
		ClientType:     entities.ClientType(r.ClientType),
		Document:       r.Document,
		CompanyName:    r.CompanyName,
		Address:        r.Address,
		Website:        r.Website,
		Notes:          r.Notes,
	}
}
