package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrClaimNextDeliveryCommandIsNotConstructed = errors.New(
	"ClaimNextDeliveryCommand must be created via NewClaimNextDeliveryCommand constructor",
)

// ClaimNextDeliveryCommand asks for the oldest order together with a vehicle.
// The delivery then completes on its own after the estimated time.
type ClaimNextDeliveryCommand struct {
	guard guard.ConstructorGuard
}

func NewClaimNextDeliveryCommand() ClaimNextDeliveryCommand {
	return ClaimNextDeliveryCommand{guard: guard.NewConstructorGuard()}
}

func (c ClaimNextDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrClaimNextDeliveryCommandIsNotConstructed)
}
