package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrAbandonStaleDeliveriesCommandIsNotConstructed = errors.New(
		"AbandonStaleDeliveriesCommand must be created via NewAbandonStaleDeliveriesCommand constructor",
	)
	ErrNowIsRequired = errs.NewValueIsRequiredError("now")
)

// AbandonStaleDeliveriesCommand asks the coordinator to give up every
// explicitly confirmed delivery whose deadline is before now.
type AbandonStaleDeliveriesCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewAbandonStaleDeliveriesCommand(now time.Time) (AbandonStaleDeliveriesCommand, error) {
	if now.IsZero() {
		return AbandonStaleDeliveriesCommand{}, ErrNowIsRequired
	}

	return AbandonStaleDeliveriesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AbandonStaleDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAbandonStaleDeliveriesCommandIsNotConstructed)
}

func (c AbandonStaleDeliveriesCommand) Now() time.Time {
	return c.now
}
