package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

// OrderFoundMessage accompanies every successful status lookup.
const OrderFoundMessage = "Order found"

// GetOrderStatusQueryHandler reads an order from the registry. Unknown ids
// yield errs.ObjectNotFoundError.
type GetOrderStatusQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderStatusQueryHandler(reader ports.OrderReader) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{reader: reader}
}

func (h GetOrderStatusQueryHandler) Handle(
	_ context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	snapshot, err := h.reader.Order(query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		OrderID:       snapshot.ID,
		Status:        snapshot.Status.String(),
		Message:       OrderFoundMessage,
		EstimatedTime: snapshot.EstimatedTime(),
		VehicleID:     snapshot.VehicleID,
	}, nil
}
