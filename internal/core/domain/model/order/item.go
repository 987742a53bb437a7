package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Item is one line of an order. It is a value object: two items with the same
// name and quantity are interchangeable.
type Item struct {
	name     string
	quantity int
}

// NewItem validates and creates an Item. The name is trimmed; an empty name or a
// quantity below 1 is rejected.
func NewItem(name string, quantity int) (Item, error) {
	name = strings.TrimSpace(name)

	var nameErr, quantityErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"item quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := errors.Join(nameErr, quantityErr); err != nil {
		return Item{}, err
	}

	return Item{name: name, quantity: quantity}, nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

// String renders the item the way customers see it, e.g. "2x Pizza".
func (i Item) String() string {
	return fmt.Sprintf("%dx %s", i.quantity, i.name)
}

// FormatItems joins items into a single customer-facing line: "2x Pizza, 1x Salad".
func FormatItems(items []Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, ", ")
}
