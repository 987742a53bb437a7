package services

import (
	"sync"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// OrderRegistry keeps every order placed during the process lifetime and hands
// out sequential ids. Records are never removed.
//
// Reads take a shared lock and return copies. Writes take the exclusive lock;
// in practice the only writer is the DeliveryCoordinator.
type OrderRegistry struct {
	mu     sync.RWMutex
	orders map[order.ID]*order.Order
	lastID order.ID
	now    func() time.Time
}

// NewOrderRegistry returns an empty registry whose first id will be 1.
func NewOrderRegistry(now func() time.Time) *OrderRegistry {
	if now == nil {
		now = time.Now
	}
	return &OrderRegistry{
		orders: make(map[order.ID]*order.Order),
		now:    now,
	}
}

// Submit creates a Pending order with the next id and stores it. An id is
// consumed only when the order is valid.
func (r *OrderRegistry) Submit(items []order.Item, distance int) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, err := order.NewOrder(r.lastID+1, items, distance, r.now())
	if err != nil {
		return nil, err
	}

	r.lastID = o.ID()
	r.orders[o.ID()] = o
	return o, nil
}

// Get returns a snapshot of the order, whatever its status and whether or not
// it is still queued.
func (r *OrderRegistry) Get(id order.ID) (order.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return order.Snapshot{}, errs.NewObjectNotFoundError("order", id)
	}
	return o.Snapshot(), nil
}

// Update runs fn on the stored order under the write lock. fn must leave the
// order unchanged when it returns an error; order transitions already do.
func (r *OrderRegistry) Update(id order.ID, fn func(o *order.Order) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	return fn(o)
}

// Len returns the number of orders ever placed.
func (r *OrderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}
