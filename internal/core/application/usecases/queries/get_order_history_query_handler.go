package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

// GetOrderHistoryQueryHandler combines the current status from the registry
// with the journaled events. The journal is advisory, so the event list may
// lag behind or miss entries whose write failed.
type GetOrderHistoryQueryHandler struct {
	reader  ports.OrderReader
	journal ports.DeliveryJournal
}

func NewGetOrderHistoryQueryHandler(
	reader ports.OrderReader,
	journal ports.DeliveryJournal,
) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{reader: reader, journal: journal}
}

func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	snapshot, err := h.reader.Order(query.OrderID())
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	events, err := h.journal.History(ctx, query.OrderID())
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			ID:        e.ID().String(),
			Kind:      e.Kind().String(),
			VehicleID: e.VehicleID(),
			Reason:    e.Reason(),
			At:        e.At(),
		})
	}

	return GetOrderHistoryQueryResponse{
		OrderID: snapshot.ID,
		Status:  snapshot.Status.String(),
		Events:  views,
	}, nil
}
