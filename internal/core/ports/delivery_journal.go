package ports

import (
	"context"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/order"
)

// DeliveryJournal stores the audit trail of delivery events.
type DeliveryJournal interface {
	// Append stores one event. Events with an id already stored are ignored.
	Append(ctx context.Context, event delivery.Event) error

	// AppendAll stores a batch atomically: either every new event is stored or
	// none is. Ids already stored are skipped as in Append.
	AppendAll(ctx context.Context, events []delivery.Event) error

	// History returns the events of one order, oldest first. An order without
	// events yields an empty slice, not an error.
	History(ctx context.Context, orderID order.ID) ([]delivery.Event, error)
}
