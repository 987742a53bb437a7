package commands

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// journalRecorder appends events on behalf of handlers. The journal is an
// audit trail: a failed write is logged and dropped, never returned.
type journalRecorder struct {
	journal ports.DeliveryJournal
	logger  *slog.Logger
	now     func() time.Time
}

func newJournalRecorder(journal ports.DeliveryJournal, logger *slog.Logger) journalRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return journalRecorder{
		journal: journal,
		logger:  logger.With("component", "delivery-journal"),
		now:     time.Now,
	}
}

// journalEntry is one event to record in a batch.
type journalEntry struct {
	orderID   order.ID
	kind      delivery.EventKind
	vehicleID string
	reason    string
}

func (r journalRecorder) record(ctx context.Context, orderID order.ID, kind delivery.EventKind, vehicleID, reason string) {
	if r.journal == nil {
		return
	}

	event, ok := r.build(ctx, journalEntry{orderID: orderID, kind: kind, vehicleID: vehicleID, reason: reason})
	if !ok {
		return
	}

	if err := r.journal.Append(ctx, event); err != nil {
		r.logger.WarnContext(ctx, "Failed to append delivery event",
			"order_id", orderID, "kind", kind, "event_id", event.ID().String(), "error", err)
	}
}

// recordAll writes entries in one AppendAll call. Entries whose event cannot
// be built are logged and left out of the batch.
func (r journalRecorder) recordAll(ctx context.Context, entries []journalEntry) {
	if r.journal == nil || len(entries) == 0 {
		return
	}

	events := make([]delivery.Event, 0, len(entries))
	for _, entry := range entries {
		if event, ok := r.build(ctx, entry); ok {
			events = append(events, event)
		}
	}
	if len(events) == 0 {
		return
	}

	if err := r.journal.AppendAll(ctx, events); err != nil {
		r.logger.WarnContext(ctx, "Failed to append delivery events",
			"events", len(events), "error", err)
	}
}

func (r journalRecorder) build(ctx context.Context, entry journalEntry) (delivery.Event, bool) {
	event, err := delivery.NewEvent(entry.orderID, entry.kind, r.now())
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to build delivery event",
			"order_id", entry.orderID, "kind", entry.kind, "error", err)
		return delivery.Event{}, false
	}
	return event.WithVehicle(entry.vehicleID).WithReason(entry.reason), true
}

// NewTimedDeliveryRecorder returns the hook the coordinator calls when a
// ClaimNextDelivery timer completes an order.
func NewTimedDeliveryRecorder(journal ports.DeliveryJournal, logger *slog.Logger) func(order.Snapshot) {
	recorder := newJournalRecorder(journal, logger)
	return func(snapshot order.Snapshot) {
		recorder.record(context.Background(), snapshot.ID, delivery.EventDelivered, snapshot.VehicleID, "timer")
	}
}
