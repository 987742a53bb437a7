package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmDeliveryCommand(t *testing.T) {
	cmd, err := commands.NewConfirmDeliveryCommand(2, " Moto-1 ")
	require.NoError(t, err)
	assert.EqualValues(t, 2, cmd.OrderID())
	assert.Equal(t, "Moto-1", cmd.VehicleID())

	_, err = commands.NewConfirmDeliveryCommand(0, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, commands.ErrVehicleIDIsRequired)
}

func TestConfirmDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewConfirmDeliveryCommand(2, "Moto-1")
		coordinator := new(MockCoordinator)
		journal := new(MockJournal)
		mock.InOrder(
			coordinator.On("ConfirmDelivery", cmd.OrderID(), "Moto-1").Return(nil).Once(),
			journal.On("Append", ctx, eventFor(2, delivery.EventDelivered, "Moto-1")).Return(nil).Once(),
		)

		h := commands.NewConfirmDeliveryCommandHandler(coordinator, journal, discardLogger)

		require.NoError(t, h.Handle(ctx, cmd))
		coordinator.AssertExpectations(t)
		journal.AssertExpectations(t)
	})

	t.Run("second confirm", func(t *testing.T) {
		cmd, _ := commands.NewConfirmDeliveryCommand(2, "Moto-1")
		coordinator := new(MockCoordinator)
		journal := new(MockJournal)
		coordinator.On("ConfirmDelivery", cmd.OrderID(), "Moto-1").
			Return(errs.NewPreconditionIsNotMetError("order 2")).Once()

		h := commands.NewConfirmDeliveryCommandHandler(coordinator, journal, discardLogger)
		err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrPreconditionIsNotMet)
		journal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("not constructed", func(t *testing.T) {
		h := commands.NewConfirmDeliveryCommandHandler(new(MockCoordinator), nil, discardLogger)

		err := h.Handle(t.Context(), commands.ConfirmDeliveryCommand{})

		require.ErrorIs(t, err, commands.ErrConfirmDeliveryCommandIsNotConstructed)
	})
}
