package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrVehicleIDIsRequired = errs.NewValueIsRequiredError("vehicle id")
)

// ConfirmDeliveryCommand represents a worker reporting that the order was
// delivered with the named vehicle.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   order.ID
	vehicleID string

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(orderID order.ID, vehicleID string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() order.ID {
	return c.orderID
}

func (c ConfirmDeliveryCommand) VehicleID() string {
	return c.vehicleID
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setVehicleID(vehicleID string) error {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return ErrVehicleIDIsRequired
	}

	c.vehicleID = vehicleID
	return nil
}
