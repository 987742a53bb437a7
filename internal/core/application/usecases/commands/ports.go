// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler follows the same shape: validate the command, run one
// coordinator operation, then record the outcome in the delivery journal.
package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// Narrow views of the coordinator, one per use case, so each handler depends
// only on the operation it drives.
type (
	// OrderIntake admits new orders.
	OrderIntake interface {
		PlaceOrder(items []order.Item, distance int) (services.Placement, error)
	}

	// OrderClaimer hands the oldest queued order to a worker.
	OrderClaimer interface {
		ClaimOrder(ctx context.Context) (services.ClaimedOrder, error)
	}

	// VehicleClaimer binds a vehicle to a claimed order.
	VehicleClaimer interface {
		ClaimVehicle(ctx context.Context, orderID order.ID) (string, error)
	}

	// DeliveryConfirmer completes an explicitly confirmed delivery.
	DeliveryConfirmer interface {
		ConfirmDelivery(orderID order.ID, vehicleID string) error
	}

	// DeliveryPairer takes an order and a vehicle in one step.
	DeliveryPairer interface {
		ClaimNextDelivery(ctx context.Context) (services.Dispatch, error)
	}

	// DeliveryAbandoner gives up a single delivery.
	DeliveryAbandoner interface {
		Abandon(orderID order.ID, reason string) (services.AbandonedDelivery, error)
	}

	// StaleDeliveryAbandoner gives up every delivery past its deadline.
	StaleDeliveryAbandoner interface {
		AbandonExpired(now time.Time) ([]services.AbandonedDelivery, error)
	}
)
