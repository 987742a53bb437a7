// Package grpc exposes the order pipeline as the restaurant.v1.RestaurantService
// gRPC service. Each RPC builds a command or query, runs its handler and maps
// the resulting error onto a status code.
package grpc

import (
	"context"
	"log/slog"

	"restaurant/internal/api/restaurantv1"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

// Handlers lists the use cases served over gRPC.
type Handlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	ClaimOrder        commands.ClaimOrderCommandHandler
	ClaimVehicle      commands.ClaimVehicleCommandHandler
	ConfirmDelivery   commands.ConfirmDeliveryCommandHandler
	ClaimNextDelivery commands.ClaimNextDeliveryCommandHandler
	AbandonDelivery   commands.AbandonDeliveryCommandHandler
	GetOrderStatus    queries.GetOrderStatusQueryHandler
	GetOrderItems     queries.GetOrderItemsQueryHandler
}

// Server implements restaurantv1.RestaurantServiceServer.
type Server struct {
	restaurantv1.UnimplementedRestaurantServiceServer

	handlers Handlers
	logger   *slog.Logger
}

var _ restaurantv1.RestaurantServiceServer = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "grpc-server"),
	}
}

// Register creates a grpc.Server serving s. The options are passed through,
// typically to add interceptors.
func (s *Server) Register(opts ...grpc.ServerOption) *grpc.Server {
	server := grpc.NewServer(opts...)
	restaurantv1.RegisterRestaurantServiceServer(server, s)
	return server
}

func (s *Server) PlaceOrder(
	ctx context.Context,
	req *restaurantv1.PlaceOrderRequest,
) (*restaurantv1.PlaceOrderResponse, error) {
	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.OrderLine{Name: item.Name, Quantity: int(item.Quantity)})
	}

	cmd, err := commands.NewPlaceOrderCommand(lines, int(req.DistanceKm))
	if err != nil {
		return nil, s.fail(ctx, "PlaceOrder", err)
	}

	placement, err := s.handlers.PlaceOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, s.fail(ctx, "PlaceOrder", err)
	}

	return &restaurantv1.PlaceOrderResponse{
		OrderID: int64(placement.OrderID),
		Message: placement.Message,
	}, nil
}

func (s *Server) QueryOrderStatus(
	ctx context.Context,
	req *restaurantv1.OrderStatusRequest,
) (*restaurantv1.OrderStatusResponse, error) {
	query, err := queries.NewGetOrderStatusQuery(order.ID(req.OrderID))
	if err != nil {
		return nil, s.fail(ctx, "QueryOrderStatus", err)
	}

	response, err := s.handlers.GetOrderStatus.Handle(ctx, query)
	if err != nil {
		return nil, s.fail(ctx, "QueryOrderStatus", err)
	}

	return &restaurantv1.OrderStatusResponse{
		Status:        response.Status,
		Message:       response.Message,
		EstimatedTime: response.EstimatedTime,
	}, nil
}

func (s *Server) QueryOrderItems(
	ctx context.Context,
	req *restaurantv1.OrderItemsRequest,
) (*restaurantv1.OrderItemsResponse, error) {
	query, err := queries.NewGetOrderItemsQuery(order.ID(req.OrderID))
	if err != nil {
		return nil, s.fail(ctx, "QueryOrderItems", err)
	}

	response, err := s.handlers.GetOrderItems.Handle(ctx, query)
	if err != nil {
		return nil, s.fail(ctx, "QueryOrderItems", err)
	}

	return &restaurantv1.OrderItemsResponse{
		OrderID: int64(response.OrderID),
		Message: response.Message,
	}, nil
}

func (s *Server) ClaimNextDelivery(
	ctx context.Context,
	_ *restaurantv1.ClaimNextDeliveryRequest,
) (*restaurantv1.ClaimNextDeliveryResponse, error) {
	dispatch, err := s.handlers.ClaimNextDelivery.Handle(ctx, commands.NewClaimNextDeliveryCommand())
	if err != nil {
		return nil, s.fail(ctx, "ClaimNextDelivery", err)
	}

	return &restaurantv1.ClaimNextDeliveryResponse{
		OrderID:   int64(dispatch.OrderID),
		VehicleID: dispatch.VehicleID,
		Message:   dispatch.Message,
	}, nil
}

func (s *Server) ClaimOrder(
	ctx context.Context,
	_ *restaurantv1.ClaimOrderRequest,
) (*restaurantv1.ClaimOrderResponse, error) {
	claimed, err := s.handlers.ClaimOrder.Handle(ctx, commands.NewClaimOrderCommand())
	if err != nil {
		return nil, s.fail(ctx, "ClaimOrder", err)
	}

	return &restaurantv1.ClaimOrderResponse{
		OrderID:  int64(claimed.OrderID),
		Distance: int32(claimed.Distance),
	}, nil
}

func (s *Server) ClaimVehicle(
	ctx context.Context,
	req *restaurantv1.ClaimVehicleRequest,
) (*restaurantv1.ClaimVehicleResponse, error) {
	cmd, err := commands.NewClaimVehicleCommand(order.ID(req.OrderID))
	if err != nil {
		return nil, s.fail(ctx, "ClaimVehicle", err)
	}

	vehicleID, err := s.handlers.ClaimVehicle.Handle(ctx, cmd)
	if err != nil {
		return nil, s.fail(ctx, "ClaimVehicle", err)
	}

	return &restaurantv1.ClaimVehicleResponse{VehicleID: vehicleID}, nil
}

func (s *Server) ConfirmDelivery(
	ctx context.Context,
	req *restaurantv1.ConfirmDeliveryRequest,
) (*restaurantv1.ConfirmDeliveryResponse, error) {
	cmd, err := commands.NewConfirmDeliveryCommand(order.ID(req.OrderID), req.VehicleID)
	if err != nil {
		return nil, s.fail(ctx, "ConfirmDelivery", err)
	}

	if err = s.handlers.ConfirmDelivery.Handle(ctx, cmd); err != nil {
		return nil, s.fail(ctx, "ConfirmDelivery", err)
	}

	return &restaurantv1.ConfirmDeliveryResponse{}, nil
}

func (s *Server) AbandonDelivery(
	ctx context.Context,
	req *restaurantv1.AbandonDeliveryRequest,
) (*restaurantv1.AbandonDeliveryResponse, error) {
	cmd, err := commands.NewAbandonDeliveryCommand(order.ID(req.OrderID), req.Reason)
	if err != nil {
		return nil, s.fail(ctx, "AbandonDelivery", err)
	}

	if _, err = s.handlers.AbandonDelivery.Handle(ctx, cmd); err != nil {
		return nil, s.fail(ctx, "AbandonDelivery", err)
	}

	return &restaurantv1.AbandonDeliveryResponse{}, nil
}

// fail maps err to a status. Only internal errors are logged; the rest are
// expected outcomes reported to the caller.
func (s *Server) fail(ctx context.Context, method string, err error) error {
	st := toStatus(err)
	if codeOf(err) == codes.Internal {
		s.logger.ErrorContext(ctx, "RPC failed", "method", method, "error", err)
	}
	return st
}
