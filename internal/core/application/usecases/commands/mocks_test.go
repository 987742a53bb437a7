package commands_test

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

type MockCoordinator struct{ mock.Mock }

func (m *MockCoordinator) PlaceOrder(items []order.Item, distance int) (services.Placement, error) {
	args := m.Called(items, distance)
	return args.Get(0).(services.Placement), args.Error(1)
}

func (m *MockCoordinator) ClaimOrder(ctx context.Context) (services.ClaimedOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.ClaimedOrder), args.Error(1)
}

func (m *MockCoordinator) ClaimVehicle(ctx context.Context, orderID order.ID) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockCoordinator) ConfirmDelivery(orderID order.ID, vehicleID string) error {
	args := m.Called(orderID, vehicleID)
	return args.Error(0)
}

func (m *MockCoordinator) ClaimNextDelivery(ctx context.Context) (services.Dispatch, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.Dispatch), args.Error(1)
}

func (m *MockCoordinator) Abandon(orderID order.ID, reason string) (services.AbandonedDelivery, error) {
	args := m.Called(orderID, reason)
	return args.Get(0).(services.AbandonedDelivery), args.Error(1)
}

func (m *MockCoordinator) AbandonExpired(now time.Time) ([]services.AbandonedDelivery, error) {
	args := m.Called(now)
	abandoned, _ := args.Get(0).([]services.AbandonedDelivery)
	return abandoned, args.Error(1)
}

type MockJournal struct{ mock.Mock }

func (m *MockJournal) Append(ctx context.Context, event delivery.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockJournal) AppendAll(ctx context.Context, events []delivery.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockJournal) History(ctx context.Context, orderID order.ID) ([]delivery.Event, error) {
	args := m.Called(ctx, orderID)
	events, _ := args.Get(0).([]delivery.Event)
	return events, args.Error(1)
}

// eventFor matches an appended event by order, kind and vehicle.
func eventFor(orderID order.ID, kind delivery.EventKind, vehicleID string) any {
	return mock.MatchedBy(func(e delivery.Event) bool {
		return e.OrderID() == orderID && e.Kind() == kind && e.VehicleID() == vehicleID
	})
}

func orderSnapshot(id order.ID, vehicleID string) order.Snapshot {
	return order.Snapshot{ID: id, Status: order.Delivered, VehicleID: vehicleID}
}
