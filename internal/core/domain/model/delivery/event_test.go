package delivery_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("should create event with fresh id", func(t *testing.T) {
		event, err := delivery.NewEvent(3, delivery.EventDispatched, at)
		require.NoError(t, err)

		event = event.WithVehicle(" Moto-2 ").WithReason("")

		require.NoError(t, event.Validate())
		require.NoError(t, event.ID().Validate())
		assert.EqualValues(t, 3, event.OrderID())
		assert.Equal(t, "Moto-2", event.VehicleID())
		assert.Equal(t, delivery.EventDispatched, event.Kind())
		assert.Empty(t, event.Reason())
		assert.Equal(t, at, event.At())
	})

	t.Run("should reject invalid fields together", func(t *testing.T) {
		_, err := delivery.NewEvent(0, "cooked", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), `"cooked" is not a valid event kind`)
	})
}

func TestRestoreEvent(t *testing.T) {
	id := kernel.NewUUID()
	at := time.Now()

	event, err := delivery.RestoreEvent(id, 8, "Moto-1", delivery.EventAbandoned, "lease expired", at)

	require.NoError(t, err)
	assert.True(t, event.ID().IsEqual(id))
	assert.Equal(t, "lease expired", event.Reason())

	_, err = delivery.RestoreEvent(kernel.UUID{}, 8, "", delivery.EventPlaced, "", at)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestEvent_Validate(t *testing.T) {
	assert.Equal(t, delivery.ErrEventIsNotConstructed, delivery.Event{}.Validate())
}

func TestEventKind_Validate(t *testing.T) {
	for _, kind := range delivery.Kinds() {
		require.NoError(t, kind.Validate(), kind.String())
	}
	require.ErrorIs(t, delivery.EventKind("").Validate(), errs.ErrValueIsInvalid)
}
