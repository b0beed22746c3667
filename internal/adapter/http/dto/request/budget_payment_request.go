package request

import "encoding/json"

// BudgetPaymentCreateRequest is the payload for the "cria e processa pagamento" route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.
// The bare Mercado Pago payload is also accepted without the envelope.
type BudgetPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
