// Package kernel holds the shared value objects of the restaurant domain.
//
// UUID identifies things that have no natural sequential number: delivery leases
// opened by the coordinator and the events written to the delivery journal.
// Orders use their own sequential identifiers (see package order) and vehicles
// use their pool labels (see package vehicle).
package kernel
