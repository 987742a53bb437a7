package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/ports"
)

// ClaimVehicleCommandHandler waits for a free vehicle and binds it to the
// claimed order. It returns the vehicle id the worker must confirm with.
type ClaimVehicleCommandHandler struct {
	claimer  VehicleClaimer
	recorder journalRecorder
}

func NewClaimVehicleCommandHandler(
	claimer VehicleClaimer,
	journal ports.DeliveryJournal,
	logger *slog.Logger,
) ClaimVehicleCommandHandler {
	return ClaimVehicleCommandHandler{
		claimer:  claimer,
		recorder: newJournalRecorder(journal, logger),
	}
}

func (h ClaimVehicleCommandHandler) Handle(ctx context.Context, cmd ClaimVehicleCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	vehicleID, err := h.claimer.ClaimVehicle(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	h.recorder.record(ctx, cmd.OrderID(), delivery.EventDispatched, vehicleID, "")
	return vehicleID, nil
}
