package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery asks for the journaled events of one order.
type GetOrderHistoryQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID order.ID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() order.ID {
	return q.orderID
}

// EventView is one journal entry in a read model.
type EventView struct {
	ID        string
	Kind      string
	VehicleID string
	Reason    string
	At        time.Time
}

type GetOrderHistoryQueryResponse struct {
	OrderID order.ID
	Status  string
	Events  []EventView
}
