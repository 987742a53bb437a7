package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

const itemsMessagePrefix = "Items: "

type GetOrderItemsQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderItemsQueryHandler(reader ports.OrderReader) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{reader: reader}
}

func (h GetOrderItemsQueryHandler) Handle(
	_ context.Context,
	query GetOrderItemsQuery,
) (GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderItemsQueryResponse{}, err
	}

	snapshot, err := h.reader.Order(query.OrderID())
	if err != nil {
		return GetOrderItemsQueryResponse{}, err
	}

	items := make([]ItemView, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, ItemView{Name: item.Name(), Quantity: item.Quantity()})
	}

	return GetOrderItemsQueryResponse{
		OrderID: snapshot.ID,
		Message: itemsMessagePrefix + snapshot.ItemsSummary(),
		Items:   items,
	}, nil
}
