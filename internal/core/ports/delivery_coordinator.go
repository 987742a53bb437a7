package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// OrderReader looks up any order ever placed. Lookups never block on claimers.
type OrderReader interface {
	Order(id order.ID) (order.Snapshot, error)
}

// FleetReader exposes point-in-time views of queue, vehicles and open leases.
type FleetReader interface {
	Stats() services.Stats
	Fleet() []services.VehicleState
	Leases() []services.LeaseView
}

// DeliveryCoordinator is the full operation set of the order pipeline.
// services.DeliveryCoordinator is the only implementation; the interface lets
// the composition root hand narrower views to each use case.
type DeliveryCoordinator interface {
	OrderReader
	FleetReader

	PlaceOrder(items []order.Item, distance int) (services.Placement, error)

	ClaimOrder(ctx context.Context) (services.ClaimedOrder, error)
	ClaimVehicle(ctx context.Context, orderID order.ID) (string, error)
	ConfirmDelivery(orderID order.ID, vehicleID string) error

	ClaimNextDelivery(ctx context.Context) (services.Dispatch, error)

	Abandon(orderID order.ID, reason string) (services.AbandonedDelivery, error)
	AbandonExpired(now time.Time) ([]services.AbandonedDelivery, error)

	Close(ctx context.Context) error
}

var _ DeliveryCoordinator = (*services.DeliveryCoordinator)(nil)
