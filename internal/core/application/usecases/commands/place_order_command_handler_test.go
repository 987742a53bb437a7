package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlaceOrderCommand(t *testing.T) commands.PlaceOrderCommand {
	t.Helper()

	cmd, err := commands.NewPlaceOrderCommand([]commands.OrderLine{{Name: "Pizza", Quantity: 2}}, 3)
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newPlaceOrderCommand(t)
	placement := services.Placement{OrderID: 1, Message: services.PlacementMessage}

	coordinator := new(MockCoordinator)
	journal := new(MockJournal)
	mock.InOrder(
		coordinator.On("PlaceOrder", cmd.Items(), 3).Return(placement, nil).Once(),
		journal.On("Append", ctx, eventFor(1, delivery.EventPlaced, "")).Return(nil).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(coordinator, journal, discardLogger)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, placement, got)
	coordinator.AssertExpectations(t)
	journal.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	coordinator := new(MockCoordinator)
	h := commands.NewPlaceOrderCommandHandler(coordinator, nil, discardLogger)

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	coordinator.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_QueueFull(t *testing.T) {
	cmd := newPlaceOrderCommand(t)
	coordinator := new(MockCoordinator)
	journal := new(MockJournal)
	coordinator.On("PlaceOrder", mock.Anything, 3).
		Return(services.Placement{}, errs.NewResourceIsExhaustedError("order queue", 10)).Once()

	h := commands.NewPlaceOrderCommandHandler(coordinator, journal, discardLogger)
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrResourceIsExhausted)
	journal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_JournalFailureIsSwallowed(t *testing.T) {
	cmd := newPlaceOrderCommand(t)
	coordinator := new(MockCoordinator)
	journal := new(MockJournal)
	coordinator.On("PlaceOrder", mock.Anything, 3).Return(services.Placement{OrderID: 5}, nil).Once()
	journal.On("Append", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	h := commands.NewPlaceOrderCommandHandler(coordinator, journal, discardLogger)
	got, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.EqualValues(t, 5, got.OrderID)
	journal.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_WithoutJournal(t *testing.T) {
	cmd := newPlaceOrderCommand(t)
	coordinator := new(MockCoordinator)
	coordinator.On("PlaceOrder", mock.Anything, 3).Return(services.Placement{OrderID: 2}, nil).Once()

	h := commands.NewPlaceOrderCommandHandler(coordinator, nil, nil)
	_, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
}
