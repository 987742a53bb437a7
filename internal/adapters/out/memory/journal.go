// Package memory keeps the delivery journal in process memory. It backs the
// journal when no database is configured and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

var _ ports.DeliveryJournal = (*Journal)(nil)

// Journal is a mutex-guarded ports.DeliveryJournal. Events live until the
// process exits.
type Journal struct {
	mu      sync.RWMutex
	seen    map[string]struct{}
	byOrder map[order.ID][]delivery.Event
}

func NewJournal() *Journal {
	return &Journal{
		seen:    make(map[string]struct{}),
		byOrder: make(map[order.ID][]delivery.Event),
	}
}

func (j *Journal) Append(ctx context.Context, event delivery.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	key := event.ID().String()
	if _, ok := j.seen[key]; ok {
		return nil
	}
	j.seen[key] = struct{}{}
	j.byOrder[event.OrderID()] = append(j.byOrder[event.OrderID()], event)
	return nil
}

func (j *Journal) AppendAll(ctx context.Context, events []delivery.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return err
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	for _, event := range events {
		key := event.ID().String()
		if _, ok := j.seen[key]; ok {
			continue
		}
		j.seen[key] = struct{}{}
		j.byOrder[event.OrderID()] = append(j.byOrder[event.OrderID()], event)
	}
	return nil
}

func (j *Journal) History(ctx context.Context, orderID order.ID) ([]delivery.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	j.mu.RLock()
	events := make([]delivery.Event, len(j.byOrder[orderID]))
	copy(events, j.byOrder[orderID])
	j.mu.RUnlock()

	// Timers and workers append concurrently, so insertion order can lag event time.
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].At().Before(events[b].At())
	})
	return events, nil
}

// Len returns the number of stored events.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.seen)
}
