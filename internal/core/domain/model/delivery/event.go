package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// EventKind names the step of the pipeline an event records.
type EventKind string

const (
	EventPlaced     EventKind = "placed"
	EventClaimed    EventKind = "claimed"
	EventDispatched EventKind = "dispatched"
	EventDelivered  EventKind = "delivered"
	EventAbandoned  EventKind = "abandoned"
)

// ErrEventIsNotConstructed is returned when using an Event that bypassed NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Kinds lists every valid kind in pipeline order.
func Kinds() []EventKind {
	return []EventKind{EventPlaced, EventClaimed, EventDispatched, EventDelivered, EventAbandoned}
}

func (k EventKind) Validate() error {
	for _, known := range Kinds() {
		if k == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("event kind", fmt.Errorf("%q is not a valid event kind", string(k)))
}

func (k EventKind) String() string {
	return string(k)
}

// Event is one immutable journal entry.
type Event struct {
	id        kernel.UUID
	orderID   order.ID
	vehicleID string
	kind      EventKind
	reason    string
	at        time.Time
	guard     guard.ConstructorGuard
}

// NewEvent creates an event with a fresh id.
//
// Example:
//
//	event, err := delivery.NewEvent(orderID, delivery.EventDispatched, time.Now())
//	event = event.WithVehicle("Moto-1")
func NewEvent(orderID order.ID, kind EventKind, at time.Time) (Event, error) {
	return RestoreEvent(kernel.NewUUID(), orderID, "", kind, "", at)
}

// RestoreEvent rebuilds an event read back from storage.
func RestoreEvent(
	id kernel.UUID,
	orderID order.ID,
	vehicleID string,
	kind EventKind,
	reason string,
	at time.Time,
) (Event, error) {
	var atErr error
	if at.IsZero() {
		atErr = errs.NewValueIsRequiredError("event time")
	}
	if err := errors.Join(id.Validate(), orderID.Validate(), kind.Validate(), atErr); err != nil {
		return Event{}, err
	}

	return Event{
		id:        id,
		orderID:   orderID,
		vehicleID: strings.TrimSpace(vehicleID),
		kind:      kind,
		reason:    strings.TrimSpace(reason),
		at:        at,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// WithVehicle returns a copy of e naming the vehicle involved.
func (e Event) WithVehicle(vehicleID string) Event {
	e.vehicleID = strings.TrimSpace(vehicleID)
	return e
}

// WithReason returns a copy of e carrying a free-form reason.
func (e Event) WithReason(reason string) Event {
	e.reason = strings.TrimSpace(reason)
	return e
}

func (e Event) ID() kernel.UUID   { return e.id }
func (e Event) OrderID() order.ID { return e.orderID }
func (e Event) VehicleID() string { return e.vehicleID }
func (e Event) Kind() EventKind   { return e.kind }
func (e Event) Reason() string    { return e.reason }
func (e Event) At() time.Time     { return e.at }
