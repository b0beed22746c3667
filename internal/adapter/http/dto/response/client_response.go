package response

import "ongeo_api/internal/domain/entities"

type ClientResponse struct {
	Success bool            `json:"success"`
	Client  entities.Client `json:"client"`
}

type ClientListResponse struct {
	Success bool              `json:"success"`
	Clients []entities.Client `json:"clients"`
	Count   int               `json:"count"`
}
