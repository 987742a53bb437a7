package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// ClaimNextDeliveryCommandHandler pairs the oldest order with a free vehicle.
// It returns as soon as the pair is formed; completion is recorded by the
// hook built with NewTimedDeliveryRecorder.
type ClaimNextDeliveryCommandHandler struct {
	pairer   DeliveryPairer
	recorder journalRecorder
}

func NewClaimNextDeliveryCommandHandler(
	pairer DeliveryPairer,
	journal ports.DeliveryJournal,
	logger *slog.Logger,
) ClaimNextDeliveryCommandHandler {
	return ClaimNextDeliveryCommandHandler{
		pairer:   pairer,
		recorder: newJournalRecorder(journal, logger),
	}
}

func (h ClaimNextDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ClaimNextDeliveryCommand,
) (services.Dispatch, error) {
	if err := cmd.Validate(); err != nil {
		return services.Dispatch{}, err
	}

	dispatch, err := h.pairer.ClaimNextDelivery(ctx)
	if err != nil {
		return services.Dispatch{}, err
	}

	h.recorder.record(ctx, dispatch.OrderID, delivery.EventDispatched, dispatch.VehicleID, "")
	return dispatch, nil
}
