package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

const defaultAbandonReason = "abandoned by worker"

var ErrAbandonDeliveryCommandIsNotConstructed = errors.New(
	"AbandonDeliveryCommand must be created via NewAbandonDeliveryCommand constructor",
)

// AbandonDeliveryCommand represents a worker giving up an order it holds.
// An empty reason is replaced with a generic one.
type AbandonDeliveryCommand struct {
	orderID order.ID
	reason  string

	guard guard.ConstructorGuard
}

func NewAbandonDeliveryCommand(orderID order.ID, reason string) (AbandonDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AbandonDeliveryCommand{}, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultAbandonReason
	}

	return AbandonDeliveryCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AbandonDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAbandonDeliveryCommandIsNotConstructed)
}

func (c AbandonDeliveryCommand) OrderID() order.ID {
	return c.orderID
}

func (c AbandonDeliveryCommand) Reason() string {
	return c.reason
}
