package order_test

import (
	"testing"
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2024, 5, 1, 18, 30, 0, 0, time.FixedZone("CET", 3600))

	t.Run("valid order has no id until persisted", func(t *testing.T) {
		o, err := order.NewOrder(1, 2, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.ID(0), o.ID())
		assert.Equal(t, kernel.ID(1), o.CustomerID())
		assert.Equal(t, kernel.ID(2), o.CourierID())
		assert.Equal(t, time.UTC, o.CreatedAt().Location())
		assert.True(t, placedAt.Equal(o.CreatedAt()))
	})

	t.Run("all invalid fields are reported", func(t *testing.T) {
		o, err := order.NewOrder(0, -3, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "courierId")
		assert.Contains(t, err.Error(), "createdAt")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	o, err := order.RestoreOrder(10, 1, 2, now)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(10), o.ID())

	_, err = order.RestoreOrder(0, 1, 2, now)
	require.Error(t, err)
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestEvents(t *testing.T) {
	o, err := order.RestoreOrder(7, 1, 2, time.Now())
	require.NoError(t, err)
	item, err := order.NewItem(7, 3, 4)
	require.NoError(t, err)

	created := order.NewOrderCreatedEvent(o)
	assert.Equal(t, order.EventOrderCreated, created.Type)
	assert.Equal(t, "7", created.Key())
	require.NoError(t, created.ID.Validate())

	added := order.NewItemAddedEvent(item)
	assert.Equal(t, order.EventItemAdded, added.Type)
	assert.Equal(t, kernel.ID(3), added.PizzaID)
	assert.Equal(t, 4, added.Quantity)
	assert.False(t, added.ID.IsEqual(created.ID))

	removed := order.NewItemRemovedEvent(7, 3)
	assert.Equal(t, order.EventItemRemoved, removed.Type)
	assert.Zero(t, removed.Quantity)

	assert.Equal(t, order.EventOrderDeleted, order.NewOrderDeletedEvent(7).Type)
	assert.Equal(t, order.EventItemQuantityChanged, order.NewItemQuantityChangedEvent(item).Type)
}
