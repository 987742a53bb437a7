package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrClaimVehicleCommandIsNotConstructed = errors.New(
	"ClaimVehicleCommand must be created via NewClaimVehicleCommand constructor",
)

// ClaimVehicleCommand represents a worker holding a claimed order and asking
// for a vehicle to deliver it with.
type ClaimVehicleCommand struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

func NewClaimVehicleCommand(orderID order.ID) (ClaimVehicleCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ClaimVehicleCommand{}, err
	}

	return ClaimVehicleCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimVehicleCommand) Validate() error {
	return c.guard.Validate(ErrClaimVehicleCommandIsNotConstructed)
}

func (c ClaimVehicleCommand) OrderID() order.ID {
	return c.orderID
}
