// Package http serves the order pipeline as a JSON API on echo, next to the
// health probe and the Prometheus endpoint.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// DefaultClaimWait bounds how long a claim request waits for an order or a
// vehicle when the client sends no "wait" parameter.
const DefaultClaimWait = 30 * time.Second

// Handlers lists the use cases served over HTTP.
type Handlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	ClaimOrder        commands.ClaimOrderCommandHandler
	ClaimVehicle      commands.ClaimVehicleCommandHandler
	ConfirmDelivery   commands.ConfirmDeliveryCommandHandler
	ClaimNextDelivery commands.ClaimNextDeliveryCommandHandler
	AbandonDelivery   commands.AbandonDeliveryCommandHandler
	GetOrderStatus    queries.GetOrderStatusQueryHandler
	GetOrderItems     queries.GetOrderItemsQueryHandler
	GetOrderHistory   queries.GetOrderHistoryQueryHandler
	GetFleetStatus    queries.GetFleetStatusQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http-server"),
	}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.OrderLine{Name: item.Name, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(lines, req.DistanceKm)
	if err != nil {
		return s.respondError(ctx, err)
	}

	placement, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		OrderID: int64(placement.OrderID),
		Message: placement.Message,
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := s.handlers.GetOrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatus{
		OrderID:       int64(response.OrderID),
		Status:        response.Status,
		Message:       response.Message,
		EstimatedTime: response.EstimatedTime,
		VehicleID:     response.VehicleID,
	})
}

// GetOrderItems handles GET /api/v1/orders/:id/items.
func (s *Server) GetOrderItems(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderItemsQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := s.handlers.GetOrderItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	items := make([]OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItem{Name: item.Name, Quantity: item.Quantity}
	}

	return ctx.JSON(http.StatusOK, OrderItems{
		OrderID: int64(response.OrderID),
		Message: response.Message,
		Items:   items,
	})
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	events := make([]OrderEvent, len(response.Events))
	for i, e := range response.Events {
		events[i] = OrderEvent{
			ID:        e.ID,
			Kind:      e.Kind,
			VehicleID: e.VehicleID,
			Reason:    e.Reason,
			At:        e.At,
		}
	}

	return ctx.JSON(http.StatusOK, OrderHistory{
		OrderID: int64(response.OrderID),
		Status:  response.Status,
		Events:  events,
	})
}

// ClaimOrder handles POST /api/v1/orders/claim. It waits for a queued order.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	waitCtx, cancel, err := claimContext(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid wait parameter")
	}
	defer cancel()

	claimed, err := s.handlers.ClaimOrder.Handle(waitCtx, commands.NewClaimOrderCommand())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClaimedOrder{
		OrderID:  int64(claimed.OrderID),
		Distance: claimed.Distance,
	})
}

// ClaimVehicle handles POST /api/v1/orders/:id/vehicle. It waits for a free vehicle.
func (s *Server) ClaimVehicle(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewClaimVehicleCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	waitCtx, cancel, err := claimContext(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid wait parameter")
	}
	defer cancel()

	vehicleID, err := s.handlers.ClaimVehicle.Handle(waitCtx, cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClaimedVehicle{OrderID: int64(orderID), VehicleID: vehicleID})
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req ConfirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, req.VehicleID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.ConfirmDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AbandonDelivery handles POST /api/v1/orders/:id/abandon.
func (s *Server) AbandonDelivery(ctx echo.Context) error {
	orderID, err := order.ParseID(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req AbandonDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAbandonDeliveryCommand(orderID, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	abandoned, err := s.handlers.AbandonDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AbandonedDelivery{
		OrderID:   int64(abandoned.OrderID),
		VehicleID: abandoned.VehicleID,
		Reason:    abandoned.Reason,
	})
}

// ClaimNextDelivery handles POST /api/v1/deliveries/next. It waits for an
// order and a vehicle and returns once they are paired.
func (s *Server) ClaimNextDelivery(ctx echo.Context) error {
	waitCtx, cancel, err := claimContext(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid wait parameter")
	}
	defer cancel()

	dispatch, err := s.handlers.ClaimNextDelivery.Handle(waitCtx, commands.NewClaimNextDeliveryCommand())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Dispatch{
		OrderID:   int64(dispatch.OrderID),
		VehicleID: dispatch.VehicleID,
		Message:   dispatch.Message,
	})
}

// GetFleet handles GET /api/v1/fleet.
func (s *Server) GetFleet(ctx echo.Context) error {
	response, err := s.handlers.GetFleetStatus.Handle(ctx.Request().Context(), queries.NewGetFleetStatusQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	vehicles := make([]Vehicle, len(response.Vehicles))
	for i, v := range response.Vehicles {
		vehicles[i] = Vehicle{ID: v.ID, InUse: v.InUse}
	}

	leases := make([]Lease, len(response.Leases))
	for i, l := range response.Leases {
		leases[i] = Lease{
			ID:        l.ID.String(),
			OrderID:   int64(l.OrderID),
			VehicleID: l.VehicleID,
			ClaimedAt: l.ClaimedAt,
			Timed:     l.Timed,
		}
		if !l.Deadline.IsZero() {
			deadline := l.Deadline
			leases[i].Deadline = &deadline
		}
	}

	stats := response.Stats
	return ctx.JSON(http.StatusOK, Fleet{
		Queued:          stats.Queued,
		QueueCapacity:   stats.QueueCapacity,
		VehiclesFree:    stats.VehiclesFree,
		VehiclesInUse:   stats.VehiclesInUse,
		VehicleCapacity: stats.VehicleCapacity,
		ActiveLeases:    stats.ActiveLeases,
		OrdersPlaced:    stats.OrdersPlaced,
		Vehicles:        vehicles,
		Leases:          leases,
	})
}

// claimContext derives the waiting context of a claim from the request and
// its optional "wait" duration parameter, e.g. ?wait=5s.
func claimContext(ctx echo.Context) (context.Context, context.CancelFunc, error) {
	wait := DefaultClaimWait
	if raw := ctx.QueryParam("wait"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, nil, echo.ErrBadRequest
		}
		wait = parsed
	}

	waitCtx, cancel := context.WithTimeout(ctx.Request().Context(), wait)
	return waitCtx, cancel, nil
}
