package order

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// MaxEstimatedUnits bounds the submitted distance so that the simulated
// delivery time stays representable.
const MaxEstimatedUnits = 10_000

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// ID is the sequential order number. Valid ids start at 1.
type ID int64

// ParseID parses a decimal order number as typed by customers.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	id := ID(n)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Order is the aggregate root of the pipeline. It tracks what the customer asked
// for, how long the delivery is estimated to take and where the order is in its
// lifecycle.
//
// Order follows these invariants:
//   - id is positive and never changes
//   - items is non-empty and never changes
//   - estimatedUnits is not negative
//   - a vehicle id is present exactly when the status is InDelivery or Delivered
//   - status changes only through the Status state machine
//
// Order is not safe for concurrent use; its owner serializes access.
type Order struct {
	id ID

	items []Item

	// estimatedUnits is the submitted distance; it doubles as the simulated
	// delivery duration in time units.
	estimatedUnits int

	status Status

	// vehicleID is empty until the order is dispatched.
	vehicleID string

	placedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order.
//
// Example:
//
//	pizza, _ := order.NewItem("Pizza", 2)
//	o, err := order.NewOrder(1, []order.Item{pizza}, 3, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id ID, items []Item, estimatedUnits int, placedAt time.Time) (*Order, error) {
	o := &Order{
		status:   Pending,
		placedAt: placedAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setEstimatedUnits(estimatedUnits),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() ID {
	return o.id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) EstimatedUnits() int {
	return o.estimatedUnits
}

func (o *Order) Status() Status {
	return o.status
}

// VehicleID returns the bound vehicle, or "" before dispatch.
func (o *Order) VehicleID() string {
	return o.vehicleID
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Claim marks the order as taken from the queue by a worker.
func (o *Order) Claim() error {
	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch binds a vehicle to a Claimed order and moves it to InDelivery.
func (o *Order) Dispatch(vehicleID string) error {
	return o.bind(vehicleID, o.status.Dispatch)
}

// Pair binds a vehicle to a Pending order and moves it straight to InDelivery.
func (o *Order) Pair(vehicleID string) error {
	return o.bind(vehicleID, o.status.Pair)
}

// Deliver completes an InDelivery order. The vehicle id is kept for the record.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Abandon gives up a Claimed or InDelivery order.
func (o *Order) Abandon() error {
	newStatus, err := o.status.Abandon()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Snapshot returns an immutable copy of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:             o.id,
		Items:          o.Items(),
		EstimatedUnits: o.estimatedUnits,
		Status:         o.status,
		VehicleID:      o.vehicleID,
		PlacedAt:       o.placedAt,
	}
}

func (o *Order) bind(vehicleID string, next func() (Status, error)) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicle id")
	}

	newStatus, err := next()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = vehicleID
	return nil
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.quantity <= 0 || item.name == "" {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d was not created via NewItem", i))
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setEstimatedUnits(units int) error {
	if units < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated units", fmt.Errorf("%d is less than 0", units))
	}
	if units > MaxEstimatedUnits {
		return errs.NewValueIsOutOfRangeError("estimated units", units, 0, MaxEstimatedUnits)
	}
	o.estimatedUnits = units
	return nil
}

// Snapshot is a point-in-time copy of an Order, safe to hand to readers on
// other goroutines.
type Snapshot struct {
	ID             ID
	Items          []Item
	EstimatedUnits int
	Status         Status
	VehicleID      string
	PlacedAt       time.Time
}

// ItemsSummary renders the items as "2x Pizza, 1x Salad".
func (s Snapshot) ItemsSummary() string {
	return FormatItems(s.Items)
}

// EstimatedTime renders the estimate for customers, e.g. "3 min".
func (s Snapshot) EstimatedTime() string {
	return fmt.Sprintf("%d min", s.EstimatedUnits)
}
