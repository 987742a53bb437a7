package console

import (
	"context"
	"io"
	"strconv"

	"restaurant/internal/adapters/out/grpcclient"
	"restaurant/internal/api/restaurantv1"
)

// CustomerService is the part of the server a customer uses.
type CustomerService interface {
	PlaceOrder(ctx context.Context, items []grpcclient.Item, distanceKm int) (*restaurantv1.PlaceOrderResponse, error)
	QueryOrderStatus(ctx context.Context, orderID int64) (*restaurantv1.OrderStatusResponse, error)
	QueryOrderItems(ctx context.Context, orderID int64) (*restaurantv1.OrderItemsResponse, error)
}

type Customer struct {
	service CustomerService
	prompter
}

func NewCustomer(service CustomerService, in io.Reader, out io.Writer) *Customer {
	return &Customer{service: service, prompter: newPrompter(in, out)}
}

// Run shows the menu until the customer exits, input ends or ctx is done.
func (c *Customer) Run(ctx context.Context) error {
	c.say("=== RESTAURANT CUSTOMER ===")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.say("")
		c.say("1. Place order")
		c.say("2. Query order status")
		c.say("3. Exit")
		option, ok := c.ask("Select option: ")
		if !ok {
			return nil
		}

		switch option {
		case "1":
			c.placeOrder(ctx)
		case "2":
			c.queryStatus(ctx)
		case "3":
			c.say("Goodbye!")
			return nil
		default:
			c.say("Invalid option")
		}
	}
}

func (c *Customer) placeOrder(ctx context.Context) {
	var items []grpcclient.Item
	for {
		name, ok := c.ask("Dish name (blank line to finish): ")
		if !ok || name == "" {
			break
		}

		raw, ok := c.ask("Quantity: ")
		if !ok {
			break
		}
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity <= 0 {
			c.say("Invalid quantity")
			continue
		}

		items = append(items, grpcclient.Item{Name: name, Quantity: quantity})
		c.say("Added: %dx %s", quantity, name)
	}

	if len(items) == 0 {
		c.say("No dishes added")
		return
	}

	raw, _ := c.ask("Distance in km: ")
	distance, err := strconv.Atoi(raw)
	if err != nil || distance < 0 {
		c.say("Invalid distance")
		return
	}

	c.say("Sending order to the restaurant...")
	placed, err := c.service.PlaceOrder(ctx, items, distance)
	if err != nil {
		c.fail(err)
		return
	}
	c.say("Order #%d: %s", placed.OrderID, placed.Message)
}

func (c *Customer) queryStatus(ctx context.Context) {
	raw, _ := c.ask("Order ID: ")
	orderID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || orderID <= 0 {
		c.say("Invalid order ID")
		return
	}

	status, err := c.service.QueryOrderStatus(ctx, orderID)
	if err != nil {
		c.fail(err)
		return
	}
	c.say("%s. Status: %s. Estimated time: %s", status.Message, status.Status, status.EstimatedTime)

	items, err := c.service.QueryOrderItems(ctx, orderID)
	if err != nil {
		c.fail(err)
		return
	}
	c.say("%s", items.Message)
}
