package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentStatusFromProvider maps a Mercado Pago payment status.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}

// BudgetPayment is a payment of an approved budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (budget_id-index): budget_id
//
// MPPayloadRaw keeps the provider response as received; MPPayload is the
// parsed form used for querying/debugging.
type BudgetPayment struct {
	ID       string        `json:"id"`
	BudgetID string        `json:"budget_id"`
	Amount   float64       `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
