package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired  = errs.NewValueIsRequiredError("items")
	ErrDistanceIsInvalid = errs.NewValueIsInvalidError("distance must not be negative")
)

// OrderLine is one requested item as it arrives from a client.
type OrderLine struct {
	Name     string
	Quantity int
}

// PlaceOrderCommand represents a customer placing an order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand([]OrderLine{{Name: "Pizza", Quantity: 2}}, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	placement, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	items    []order.Item
	distance int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates every line and the distance. All problems are
// reported together.
func NewPlaceOrderCommand(lines []OrderLine, distance int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItems(lines),
		cmd.setDistance(distance),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Items returns a copy of the validated items.
func (c PlaceOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c PlaceOrderCommand) Distance() int {
	return c.distance
}

func (c *PlaceOrderCommand) setItems(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrItemsAreRequired
	}

	items := make([]order.Item, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		item, err := order.NewItem(line.Name, line.Quantity)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setDistance(distance int) error {
	if distance < 0 {
		return ErrDistanceIsInvalid
	}
	if distance > order.MaxEstimatedUnits {
		return errs.NewValueIsOutOfRangeError("distance", distance, 0, order.MaxEstimatedUnits)
	}

	c.distance = distance
	return nil
}
