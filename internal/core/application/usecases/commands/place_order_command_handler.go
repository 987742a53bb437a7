package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// PlaceOrderCommandHandler admits an order into the queue.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(coordinator, journal, logger)
//	placement, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrResourceIsExhausted) {
//	    // kitchen is full, ask the customer to retry later
//	}
type PlaceOrderCommandHandler struct {
	intake   OrderIntake
	recorder journalRecorder
}

func NewPlaceOrderCommandHandler(
	intake OrderIntake,
	journal ports.DeliveryJournal,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		intake:   intake,
		recorder: newJournalRecorder(journal, logger),
	}
}

// Handle places the order. A full queue is reported as errs.ResourceIsExhaustedError.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (services.Placement, error) {
	if err := cmd.Validate(); err != nil {
		return services.Placement{}, err
	}

	placement, err := h.intake.PlaceOrder(cmd.Items(), cmd.Distance())
	if err != nil {
		return services.Placement{}, err
	}

	h.recorder.record(ctx, placement.OrderID, delivery.EventPlaced, "", "")
	return placement, nil
}
