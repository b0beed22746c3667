package response

import (
	"time"

	"ongeo_api/internal/domain/entities"
)

type BudgetPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	BudgetID    string    `json:"budget_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBudgetPayment(p entities.BudgetPayment) BudgetPaymentResponse {
	return BudgetPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		BudgetID:     p.BudgetID,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

type BudgetPaymentListResponse struct {
	Success  bool                    `json:"success"`
	Payments []BudgetPaymentResponse `json:"payments"`
}

func FromBudgetPayments(ps []entities.BudgetPayment) BudgetPaymentListResponse {
	out := make([]BudgetPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromBudgetPayment(p))
	}
	return BudgetPaymentListResponse{Success: true, Payments: out}
}
