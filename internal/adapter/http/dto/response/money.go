package response

import (
	"ongeo_api/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// MoneyResponse is an amount rounded to cents plus its pt-BR rendering.
type MoneyResponse struct {
	Amount     float64 `json:"amount"`
	Formatted  string  `json:"formatted"`
	Provenance string  `json:"provenance,omitempty"`
}

func FromDecimal(d decimal.Decimal) MoneyResponse {
	return MoneyResponse{
		Amount:    d.Round(2).InexactFloat64(),
		Formatted: pricing.FormatBRL(d),
	}
}

func FromMoney(m pricing.Money) MoneyResponse {
	r := FromDecimal(m.Amount)
	r.Provenance = string(m.Provenance)
	return r
}
