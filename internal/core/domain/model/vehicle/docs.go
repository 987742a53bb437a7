// Package vehicle provides the Vehicle entity: one unit of the delivery fleet.
//
// Vehicles are created once, when the pool is built, and live for the whole
// process. Their identity is a label such as "Moto-1". A vehicle is either free
// or in use by exactly one delivery.
package vehicle
