// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the order registry and never touch the queue, so an order stays
// visible after it has been claimed.
package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery asks where an order is in its lifecycle.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	response, err := handler.Handle(ctx, query)
//	fmt.Printf("Order %d is %s (%s)\n", orderID, response.Status, response.EstimatedTime)
type GetOrderStatusQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(orderID order.ID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) OrderID() order.ID {
	return q.orderID
}

// GetOrderStatusQueryResponse is the customer-facing status read model.
// EstimatedTime is rendered as "<n> min".
type GetOrderStatusQueryResponse struct {
	OrderID       order.ID
	Status        string
	Message       string
	EstimatedTime string
	VehicleID     string
}
