package order_test

import (
	"testing"

	"assistance/internal/core/domain/model/kernel"
	"assistance/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtraCost(t *testing.T) {
	price, err := kernel.NewMoneyFromFloat(35)
	require.NoError(t, err)

	t.Run("recognized_name", func(t *testing.T) {
		orderID := kernel.NewUUID()
		item, itemErr := order.NewExtraCost(kernel.NewUUID(), orderID, "Cerrajeria", price)

		require.NoError(t, itemErr)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Cerrajeria", item.Name())
		assert.True(t, item.OrderID().IsEqual(orderID))
		assert.True(t, item.Price().IsEqual(price))
	})

	t.Run("unrecognized_name", func(t *testing.T) {
		_, itemErr := order.NewExtraCost(kernel.NewUUID(), kernel.NewUUID(), "Taxi", price)

		require.Error(t, itemErr)
		assert.Contains(t, itemErr.Error(), "Taxi")
	})

	t.Run("missing_order_reference", func(t *testing.T) {
		_, itemErr := order.NewExtraCost(kernel.NewUUID(), kernel.UUID{}, "Peaje", price)

		require.Error(t, itemErr)
	})
}

func TestIsRecognizedExtraCostName(t *testing.T) {
	assert.True(t, order.IsRecognizedExtraCostName("Grua Adicional"))
	assert.True(t, order.IsRecognizedExtraCostName("Suministro de Combustible"))
	assert.False(t, order.IsRecognizedExtraCostName("Masaje"))
	assert.False(t, order.IsRecognizedExtraCostName(""))
}

func TestExtraCost_Validate(t *testing.T) {
	t.Run("nil_is_invalid", func(t *testing.T) {
		var item *order.ExtraCost
		require.Error(t, item.Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		item := &order.ExtraCost{}
		require.Error(t, item.Validate())
	})
}
