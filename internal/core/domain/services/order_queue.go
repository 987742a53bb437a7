package services

import (
	"fmt"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// DefaultQueueCapacity is the number of orders the kitchen accepts before
// rejecting new ones.
const DefaultQueueCapacity = 10

// OrderQueue is a bounded FIFO of orders waiting to be claimed. It is not safe
// for concurrent use.
type OrderQueue struct {
	orders   []*order.Order
	capacity int
}

func NewOrderQueue(capacity int) (*OrderQueue, error) {
	if capacity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("queue capacity", capacity, 1, "unbounded")
	}
	return &OrderQueue{
		orders:   make([]*order.Order, 0, capacity),
		capacity: capacity,
	}, nil
}

// TryEnqueue appends o unless the queue is full.
func (q *OrderQueue) TryEnqueue(o *order.Order) bool {
	if q.IsFull() {
		return false
	}
	q.orders = append(q.orders, o)
	return true
}

// Dequeue removes the oldest order.
func (q *OrderQueue) Dequeue() (*order.Order, bool) {
	if len(q.orders) == 0 {
		return nil, false
	}

	o := q.orders[0]
	q.orders[0] = nil
	q.orders = q.orders[1:]
	return o, true
}

// PushFront puts back an order taken by a claim that could not complete, so it
// keeps its place at the head of the line.
func (q *OrderQueue) PushFront(o *order.Order) error {
	if q.IsFull() {
		return errs.NewInvariantIsViolatedErrorWithCause(
			"order queue",
			fmt.Errorf("no room to return order %s", o.ID()),
		)
	}

	q.orders = append(q.orders, nil)
	copy(q.orders[1:], q.orders)
	q.orders[0] = o
	return nil
}

func (q *OrderQueue) Len() int {
	return len(q.orders)
}

func (q *OrderQueue) Capacity() int {
	return q.capacity
}

func (q *OrderQueue) IsFull() bool {
	return len(q.orders) >= q.capacity
}
