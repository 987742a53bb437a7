// Package delivery provides the Event value object recorded in the delivery
// journal each time an order changes hands.
//
// Events form an audit trail. They are written after the coordinator has
// already changed state and are never replayed to rebuild it.
package delivery
