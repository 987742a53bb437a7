package console_test

import (
	"context"

	"restaurant/internal/adapters/out/grpcclient"
	"restaurant/internal/api/restaurantv1"

	"github.com/stretchr/testify/mock"
)

type MockService struct{ mock.Mock }

func (m *MockService) PlaceOrder(ctx context.Context, items []grpcclient.Item, distanceKm int) (*restaurantv1.PlaceOrderResponse, error) {
	args := m.Called(ctx, items, distanceKm)
	resp, _ := args.Get(0).(*restaurantv1.PlaceOrderResponse)
	return resp, args.Error(1)
}

func (m *MockService) QueryOrderStatus(ctx context.Context, orderID int64) (*restaurantv1.OrderStatusResponse, error) {
	args := m.Called(ctx, orderID)
	resp, _ := args.Get(0).(*restaurantv1.OrderStatusResponse)
	return resp, args.Error(1)
}

func (m *MockService) QueryOrderItems(ctx context.Context, orderID int64) (*restaurantv1.OrderItemsResponse, error) {
	args := m.Called(ctx, orderID)
	resp, _ := args.Get(0).(*restaurantv1.OrderItemsResponse)
	return resp, args.Error(1)
}

func (m *MockService) ClaimOrder(ctx context.Context) (*restaurantv1.ClaimOrderResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*restaurantv1.ClaimOrderResponse)
	return resp, args.Error(1)
}

func (m *MockService) ClaimVehicle(ctx context.Context, orderID int64) (*restaurantv1.ClaimVehicleResponse, error) {
	args := m.Called(ctx, orderID)
	resp, _ := args.Get(0).(*restaurantv1.ClaimVehicleResponse)
	return resp, args.Error(1)
}

func (m *MockService) ConfirmDelivery(ctx context.Context, orderID int64, vehicleID string) error {
	return m.Called(ctx, orderID, vehicleID).Error(0)
}

func (m *MockService) AbandonDelivery(ctx context.Context, orderID int64, reason string) error {
	return m.Called(ctx, orderID, reason).Error(0)
}

func (m *MockService) ClaimNextDelivery(ctx context.Context) (*restaurantv1.ClaimNextDeliveryResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*restaurantv1.ClaimNextDeliveryResponse)
	return resp, args.Error(1)
}
