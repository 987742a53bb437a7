// Package grpcclient is the client side of restaurant.v1.RestaurantService
// used by the customer and courier consoles.
package grpcclient

import (
	"context"
	"fmt"

	"restaurant/internal/api/restaurantv1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Item is one line of an order as typed by a customer.
type Item struct {
	Name     string
	Quantity int
}

// Client wraps a connection to the restaurant server.
type Client struct {
	conn *grpc.ClientConn
	api  restaurantv1.RestaurantServiceClient
}

// New connects lazily to address over plaintext. Extra options are appended,
// so tests can swap the dialer.
func New(address string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", address, err)
	}

	return &Client{
		conn: conn,
		api:  restaurantv1.NewRestaurantServiceClient(conn),
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) PlaceOrder(ctx context.Context, items []Item, distanceKm int) (*restaurantv1.PlaceOrderResponse, error) {
	req := &restaurantv1.PlaceOrderRequest{
		Items:      make([]restaurantv1.OrderItem, 0, len(items)),
		DistanceKm: int32(distanceKm),
	}
	for _, item := range items {
		req.Items = append(req.Items, restaurantv1.OrderItem{Name: item.Name, Quantity: int32(item.Quantity)})
	}
	return c.api.PlaceOrder(ctx, req)
}

func (c *Client) QueryOrderStatus(ctx context.Context, orderID int64) (*restaurantv1.OrderStatusResponse, error) {
	return c.api.QueryOrderStatus(ctx, &restaurantv1.OrderStatusRequest{OrderID: orderID})
}

func (c *Client) QueryOrderItems(ctx context.Context, orderID int64) (*restaurantv1.OrderItemsResponse, error) {
	return c.api.QueryOrderItems(ctx, &restaurantv1.OrderItemsRequest{OrderID: orderID})
}

func (c *Client) ClaimNextDelivery(ctx context.Context) (*restaurantv1.ClaimNextDeliveryResponse, error) {
	return c.api.ClaimNextDelivery(ctx, &restaurantv1.ClaimNextDeliveryRequest{})
}

func (c *Client) ClaimOrder(ctx context.Context) (*restaurantv1.ClaimOrderResponse, error) {
	return c.api.ClaimOrder(ctx, &restaurantv1.ClaimOrderRequest{})
}

func (c *Client) ClaimVehicle(ctx context.Context, orderID int64) (*restaurantv1.ClaimVehicleResponse, error) {
	return c.api.ClaimVehicle(ctx, &restaurantv1.ClaimVehicleRequest{OrderID: orderID})
}

func (c *Client) ConfirmDelivery(ctx context.Context, orderID int64, vehicleID string) error {
	_, err := c.api.ConfirmDelivery(ctx, &restaurantv1.ConfirmDeliveryRequest{OrderID: orderID, VehicleID: vehicleID})
	return err
}

func (c *Client) AbandonDelivery(ctx context.Context, orderID int64, reason string) error {
	_, err := c.api.AbandonDelivery(ctx, &restaurantv1.AbandonDeliveryRequest{OrderID: orderID, Reason: reason})
	return err
}

// Detail returns the server's message for a status error and the plain error
// text otherwise.
func Detail(err error) string {
	if st, ok := status.FromError(err); ok {
		return st.Message()
	}
	return err.Error()
}
