package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a worker asking for the next queued order.
// It carries no parameters; the oldest order is always handed out first.
type ClaimOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewClaimOrderCommand() ClaimOrderCommand {
	return ClaimOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}
