package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery asks what an order contains.
type GetOrderItemsQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

func NewGetOrderItemsQuery(orderID order.ID) (GetOrderItemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderItemsQuery{}, err
	}

	return GetOrderItemsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

func (q GetOrderItemsQuery) OrderID() order.ID {
	return q.orderID
}

// ItemView is one order line in a read model.
type ItemView struct {
	Name     string
	Quantity int
}

// GetOrderItemsQueryResponse carries the summary line "Items: 2x Pizza, 1x Salad"
// and the individual lines.
type GetOrderItemsQueryResponse struct {
	OrderID order.ID
	Message string
	Items   []ItemView
}
