package response

import (
	"encoding/json"
	"testing"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/domain/pricing"
	"ongeo_api/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBudgetPayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	res := FromBudgetPayment(entities.BudgetPayment{
		ID:           "pay-1",
		BudgetID:     "bud-1",
		Amount:       1900,
		Date:         now,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: raw,
		MPPayload:    map[string]interface{}{"a": "b"},
	})

	assert.Equal(t, "pay-1", res.ID)
	assert.Equal(t, "pay-1", res.PaymentID)
	assert.Equal(t, "bud-1", res.BudgetID)
	assert.Equal(t, "aprovado", res.Status)
	assert.Equal(t, 1900.0, res.Amount)
	assert.True(t, res.Date.Equal(now))
	assert.True(t, res.PaymentDate.Equal(now))
	assert.Equal(t, string(raw), res.MPPayloadRaw)
	assert.Equal(t, "b", res.MPPayload["a"])
}

func TestFromBudgetTotals(t *testing.T) {
	res := FromBudgetTotals(usecase.BudgetTotals{
		Display:         pricing.Money{Amount: decimal.NewFromInt(1925), Provenance: pricing.ProvenanceCalculated},
		ItemsTotal:      decimal.NewFromInt(500),
		AdditionalTotal: decimal.NewFromInt(25),
	})

	assert.True(t, res.Success)
	assert.Equal(t, 1925.0, res.Total.Amount)
	assert.Equal(t, "calculated", res.Total.Provenance)
	assert.Equal(t, "R$ 1.925,00", res.Total.Formatted)
	assert.Equal(t, 500.0, res.ItemsTotal.Amount)
	assert.Empty(t, res.ItemsTotal.Provenance)
	assert.NotNil(t, res.Groups)
}

func TestFromPublicBudget(t *testing.T) {
	total := entities.Amount(1900)
	b := entities.Budget{
		ID:         "bud-1",
		UserID:     "owner-1",
		ClientID:   "cli-1",
		Status:     entities.BudgetStatusActive,
		CustomLink: "orcamento-1",
		Result: entities.BudgetResult{
			TotalPrice: &total,
			Breakdown: []entities.BreakdownLine{
				{Item: "Base", Value: 1600},
				{Item: "Urgência", Value: 300},
			},
		},
	}

	res := FromPublicBudget(b)
	assert.Equal(t, 1900.0, res.Budget.Total.Amount)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "owner-1")
	assert.NotContains(t, string(body), "cli-1")
}

func TestFromPublicFormLink(t *testing.T) {
	res := FromPublicFormLink(entities.BudgetFormLink{
		ID:         "fl-1",
		UserID:     "owner-1",
		Slug:       "joao-topografia",
		Title:      "Orçamentos",
		ViewsCount: 10,
	})
	assert.Equal(t, entities.DefaultPrimaryColor, res.FormLink.PrimaryColor)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "owner-1")
	assert.NotContains(t, string(body), "views_count")
}

func TestFromItemOverlay_EmptyIsArray(t *testing.T) {
	body, err := json.Marshal(FromItemOverlay(usecase.ItemOverlay{}))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"items":[]`)
	assert.Contains(t, string(body), `"groups":[]`)
}
