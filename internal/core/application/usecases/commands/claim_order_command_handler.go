package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// ClaimOrderCommandHandler blocks until an order is queued and hands it to the
// caller in Claimed status. Cancelling ctx abandons the wait without taking
// anything.
type ClaimOrderCommandHandler struct {
	claimer  OrderClaimer
	recorder journalRecorder
}

func NewClaimOrderCommandHandler(
	claimer OrderClaimer,
	journal ports.DeliveryJournal,
	logger *slog.Logger,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		claimer:  claimer,
		recorder: newJournalRecorder(journal, logger),
	}
}

func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (services.ClaimedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return services.ClaimedOrder{}, err
	}

	claimed, err := h.claimer.ClaimOrder(ctx)
	if err != nil {
		return services.ClaimedOrder{}, err
	}

	h.recorder.record(ctx, claimed.OrderID, delivery.EventClaimed, "", "")
	return claimed, nil
}
