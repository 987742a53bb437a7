package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// AbandonDeliveryCommandHandler moves a Claimed or InDelivery order to
// Abandoned and returns its vehicle, if any, to the pool.
type AbandonDeliveryCommandHandler struct {
	abandoner DeliveryAbandoner
	recorder  journalRecorder
}

func NewAbandonDeliveryCommandHandler(
	abandoner DeliveryAbandoner,
	journal ports.DeliveryJournal,
	logger *slog.Logger,
) AbandonDeliveryCommandHandler {
	return AbandonDeliveryCommandHandler{
		abandoner: abandoner,
		recorder:  newJournalRecorder(journal, logger),
	}
}

func (h AbandonDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd AbandonDeliveryCommand,
) (services.AbandonedDelivery, error) {
	if err := cmd.Validate(); err != nil {
		return services.AbandonedDelivery{}, err
	}

	abandoned, err := h.abandoner.Abandon(cmd.OrderID(), cmd.Reason())
	if abandoned.OrderID == 0 {
		return services.AbandonedDelivery{}, err
	}

	// The order is abandoned even when its vehicle could not be returned.
	h.recorder.record(ctx, abandoned.OrderID, delivery.EventAbandoned, abandoned.VehicleID, abandoned.Reason)
	return abandoned, err
}
