package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/ports"
)

// ConfirmDeliveryCommandHandler marks an order Delivered and returns its
// vehicle to the pool. Confirming twice fails with errs.PreconditionIsNotMetError.
type ConfirmDeliveryCommandHandler struct {
	confirmer DeliveryConfirmer
	recorder  journalRecorder
}

func NewConfirmDeliveryCommandHandler(
	confirmer DeliveryConfirmer,
	journal ports.DeliveryJournal,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		confirmer: confirmer,
		recorder:  newJournalRecorder(journal, logger),
	}
}

func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.confirmer.ConfirmDelivery(cmd.OrderID(), cmd.VehicleID()); err != nil {
		return err
	}

	h.recorder.record(ctx, cmd.OrderID(), delivery.EventDelivered, cmd.VehicleID(), "")
	return nil
}
