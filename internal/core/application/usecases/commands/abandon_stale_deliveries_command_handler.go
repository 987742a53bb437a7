package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// AbandonStaleDeliveriesCommandHandler sweeps expired leases. The events of one
// sweep are journaled as a single batch. Deliveries abandoned before an error
// are still journaled and returned.
type AbandonStaleDeliveriesCommandHandler struct {
	abandoner StaleDeliveryAbandoner
	recorder  journalRecorder
}

func NewAbandonStaleDeliveriesCommandHandler(
	abandoner StaleDeliveryAbandoner,
	journal ports.DeliveryJournal,
	logger *slog.Logger,
) AbandonStaleDeliveriesCommandHandler {
	return AbandonStaleDeliveriesCommandHandler{
		abandoner: abandoner,
		recorder:  newJournalRecorder(journal, logger),
	}
}

func (h AbandonStaleDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd AbandonStaleDeliveriesCommand,
) ([]services.AbandonedDelivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	abandoned, err := h.abandoner.AbandonExpired(cmd.Now())

	entries := make([]journalEntry, 0, len(abandoned))
	for _, a := range abandoned {
		entries = append(entries, journalEntry{
			orderID:   a.OrderID,
			kind:      delivery.EventAbandoned,
			vehicleID: a.VehicleID,
			reason:    a.Reason,
		})
	}
	h.recorder.recordAll(ctx, entries)

	return abandoned, err
}
