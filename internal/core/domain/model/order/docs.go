// Package order provides the Order aggregate of the restaurant pipeline.
//
// The package includes:
//   - ID: the sequential order number handed out by the registry
//   - Item: one line of an order (name and positive quantity)
//   - Order: the aggregate root holding items, estimate and lifecycle status
//   - Status: the state machine that every status change goes through
//   - Snapshot: an immutable copy of an order for readers
//
// Key business rules:
//   - Orders carry at least one item and a non-negative estimate
//   - Order status follows: Pending -> Claimed -> InDelivery -> Delivered,
//     or Pending -> InDelivery -> Delivered when paired in one step
//   - Claimed and InDelivery orders can be Abandoned
//   - Delivered and Abandoned are final
//
// Orders are never deleted and their id never changes once assigned.
package order
