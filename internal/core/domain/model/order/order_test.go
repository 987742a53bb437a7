package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItems(t *testing.T) []order.Item {
	t.Helper()

	pizza, err := order.NewItem("Pizza", 2)
	require.NoError(t, err)
	salad, err := order.NewItem("Salad", 1)
	require.NoError(t, err)

	return []order.Item{pizza, salad}
}

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create pending order", func(t *testing.T) {
		items := newItems(t)

		o, err := order.NewOrder(1, items, 3, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.ID(1), o.ID())
		assert.Equal(t, items, o.Items())
		assert.Equal(t, 3, o.EstimatedUnits())
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.VehicleID())
		assert.Equal(t, placedAt, o.PlacedAt())
	})

	t.Run("should accept zero distance", func(t *testing.T) {
		o, err := order.NewOrder(7, newItems(t), 0, placedAt)

		require.NoError(t, err)
		assert.Equal(t, 0, o.EstimatedUnits())
	})

	t.Run("should reject every invalid field at once", func(t *testing.T) {
		o, err := order.NewOrder(0, nil, -1, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "estimated units")
	})

	t.Run("should bound the distance", func(t *testing.T) {
		o, err := order.NewOrder(1, newItems(t), order.MaxEstimatedUnits, placedAt)
		require.NoError(t, err)
		assert.Equal(t, order.MaxEstimatedUnits, o.EstimatedUnits())

		_, err = order.NewOrder(1, newItems(t), order.MaxEstimatedUnits+1, placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject zero value items", func(t *testing.T) {
		_, err := order.NewOrder(1, []order.Item{{}}, 1, placedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "was not created via NewItem")
	})

	t.Run("should not share the items slice with the caller", func(t *testing.T) {
		items := newItems(t)
		o, err := order.NewOrder(1, items, 1, placedAt)
		require.NoError(t, err)

		items[0], _ = order.NewItem("Soup", 9)
		returned := o.Items()
		returned[1], _ = order.NewItem("Cake", 4)

		assert.Equal(t, "2x Pizza, 1x Salad", order.FormatItems(o.Items()))
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("claim then dispatch then deliver", func(t *testing.T) {
		o, err := order.NewOrder(1, newItems(t), 3, time.Now())
		require.NoError(t, err)

		require.NoError(t, o.Claim())
		assert.Equal(t, order.Claimed, o.Status())

		require.NoError(t, o.Dispatch("Moto-1"))
		assert.Equal(t, order.InDelivery, o.Status())
		assert.Equal(t, "Moto-1", o.VehicleID())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "Moto-1", o.VehicleID())
	})

	t.Run("pair then deliver", func(t *testing.T) {
		o, err := order.NewOrder(2, newItems(t), 3, time.Now())
		require.NoError(t, err)

		require.NoError(t, o.Pair("Moto-2"))
		assert.Equal(t, order.InDelivery, o.Status())
		require.NoError(t, o.Deliver())
	})

	t.Run("second deliver is rejected", func(t *testing.T) {
		o, err := order.NewOrder(3, newItems(t), 3, time.Now())
		require.NoError(t, err)
		require.NoError(t, o.Pair("Moto-1"))
		require.NoError(t, o.Deliver())

		err = o.Deliver()

		require.ErrorIs(t, err, errs.ErrPreconditionIsNotMet)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("dispatch requires a vehicle id", func(t *testing.T) {
		o, err := order.NewOrder(4, newItems(t), 3, time.Now())
		require.NoError(t, err)
		require.NoError(t, o.Claim())

		err = o.Dispatch("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Claimed, o.Status())
	})

	t.Run("abandon keeps a pending order untouched", func(t *testing.T) {
		o, err := order.NewOrder(5, newItems(t), 3, time.Now())
		require.NoError(t, err)

		require.ErrorIs(t, o.Abandon(), errs.ErrPreconditionIsNotMet)
		assert.Equal(t, order.Pending, o.Status())

		require.NoError(t, o.Claim())
		require.NoError(t, o.Abandon())
		assert.Equal(t, order.Abandoned, o.Status())
	})
}

func TestOrder_Snapshot(t *testing.T) {
	o, err := order.NewOrder(9, newItems(t), 4, time.Now())
	require.NoError(t, err)

	snap := o.Snapshot()
	require.NoError(t, o.Claim())

	assert.Equal(t, order.Pending, snap.Status)
	assert.Equal(t, order.ID(9), snap.ID)
	assert.Equal(t, "2x Pizza, 1x Salad", snap.ItemsSummary())
	assert.Equal(t, "4 min", snap.EstimatedTime())
}

func TestParseID(t *testing.T) {
	id, err := order.ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, order.ID(12), id)
	assert.Equal(t, "12", id.String())

	for _, input := range []string{"", "abc", "0", "-4"} {
		_, err = order.ParseID(input)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
	}
}
