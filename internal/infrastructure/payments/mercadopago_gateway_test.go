package payments

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("   ")
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("configured", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("TEST-123")
		require.NoError(t, err)
		assert.NotNil(t, g)
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})

	t.Run("payload that does not fit the sdk request", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("TEST-123")
		require.NoError(t, err)

		_, _, _, err = g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":"not a number"}`))
		assert.Error(t, err)
	})
}
