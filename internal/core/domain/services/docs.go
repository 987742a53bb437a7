// Package services provides the domain services that move orders through the
// restaurant pipeline.
//
// The package includes:
//   - OrderRegistry: append-only record of every order ever placed
//   - OrderQueue: bounded FIFO of orders waiting for a worker
//   - VehiclePool: fixed fleet of vehicles with a FIFO free list
//   - DeliveryCoordinator: the monitor that admits orders and pairs them with
//     vehicles under concurrent access
//
// OrderQueue and VehiclePool are not synchronized; the DeliveryCoordinator owns
// them and touches them only while holding its mutex. OrderRegistry carries its
// own read/write lock so status queries never contend with claimers.
package services
