package services

import (
	"fmt"

	"restaurant/internal/core/domain/model/order"
)

// ReturnVehicleBehindLease puts a lent vehicle back into the pool while its
// lease still holds it, leaving the lease pointing at a free vehicle.
func (c *DeliveryCoordinator) ReturnVehicleBehindLease(vehicleID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.pool.byID[vehicleID]
	if !ok {
		return fmt.Errorf("unknown vehicle %q", vehicleID)
	}
	return c.pool.Release(v)
}

// RequeueOrder runs the rollback used by failed claims on an order that is
// already known to the registry.
func (c *DeliveryCoordinator) RequeueOrder(id order.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.registry.mu.RLock()
	o, ok := c.registry.orders[id]
	c.registry.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown order %s", id)
	}
	return c.restoreOrder(o)
}
