package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──Claim──> Claimed ──Dispatch──> InDelivery ──Deliver──> Delivered
//	   │                  │                      ▲  │
//	   └──────Pair────────┼──────────────────────┘  │
//	                      └────────Abandon──────────┴──> Abandoned
//
// Delivered and Abandoned are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of an order waiting in the queue.
	Pending

	// Claimed means a worker took the order from the queue and has no vehicle yet.
	Claimed

	// InDelivery means the order is bound to a vehicle and on its way.
	InDelivery

	// Delivered is final: the vehicle came back and the order is complete.
	Delivered

	// Abandoned is final: the order left the queue but its delivery was given up.
	Abandoned
)

var statusNames = map[Status]string{
	Pending:    "Pending",
	Claimed:    "Claimed",
	InDelivery: "InDelivery",
	Delivered:  "Delivered",
	Abandoned:  "Abandoned",
}

// Validate rejects Unknown and any value outside the declared constants.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsFinal reports whether no transition leaves s.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Abandoned
}

// Claim transitions Pending -> Claimed.
func (s Status) Claim() (Status, error) {
	return s.transition(Claimed, "claim", Pending)
}

// Dispatch transitions Claimed -> InDelivery once a vehicle is bound.
func (s Status) Dispatch() (Status, error) {
	return s.transition(InDelivery, "dispatch", Claimed)
}

// Pair transitions Pending -> InDelivery when order and vehicle are taken together.
func (s Status) Pair() (Status, error) {
	return s.transition(InDelivery, "pair", Pending)
}

// Deliver transitions InDelivery -> Delivered.
func (s Status) Deliver() (Status, error) {
	return s.transition(Delivered, "deliver", InDelivery)
}

// Abandon transitions Claimed or InDelivery -> Abandoned.
func (s Status) Abandon() (Status, error) {
	return s.transition(Abandoned, "abandon", Claimed, InDelivery)
}

func (s Status) transition(to Status, action string, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return Unknown, errs.NewPreconditionIsNotMetErrorWithCause(
		"order status",
		fmt.Errorf("%s is not a valid status to %s", s, action),
	)
}
