package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CALCULATOR_URL", "http://calc.local/")
	t.Setenv("AUTH_JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("CALCULATOR_TIMEOUT", "")
	t.Setenv("BUDGETS_TABLE", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "http://calc.local", cfg.CalculatorURL)
	assert.Equal(t, 30*time.Second, cfg.CalculatorTimeout)
	assert.Equal(t, "budgets", cfg.Tables.Budgets)
	assert.Equal(t, "unique_keys", cfg.Tables.UniqueKeys)
	assert.False(t, cfg.PaymentGatewayMock)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CALCULATOR_TIMEOUT", "45")
	t.Setenv("IDEMPOTENCY_TTL", "2h")
	t.Setenv("BUDGETS_TABLE", "ongeo_budgets")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "on")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 45*time.Second, cfg.CalculatorTimeout)
	assert.Equal(t, 2*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, "ongeo_budgets", cfg.Tables.Budgets)
	assert.True(t, cfg.PaymentGatewayMock)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("CALCULATOR_URL", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CALCULATOR_URL is required")
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET is required")
	assert.Contains(t, err.Error(), "PORT must be between")
}
