package console

import (
	"context"
	"io"
	"time"

	"restaurant/internal/api/restaurantv1"
)

// CourierService is the part of the server a courier uses.
type CourierService interface {
	ClaimOrder(ctx context.Context) (*restaurantv1.ClaimOrderResponse, error)
	ClaimVehicle(ctx context.Context, orderID int64) (*restaurantv1.ClaimVehicleResponse, error)
	ConfirmDelivery(ctx context.Context, orderID int64, vehicleID string) error
	AbandonDelivery(ctx context.Context, orderID int64, reason string) error
	ClaimNextDelivery(ctx context.Context) (*restaurantv1.ClaimNextDeliveryResponse, error)
}

// Courier delivers orders with the explicit claim protocol, travelling for
// distance × TimeUnit between taking a vehicle and confirming.
type Courier struct {
	service  CourierService
	timeUnit time.Duration
	prompter
}

func NewCourier(service CourierService, timeUnit time.Duration, in io.Reader, out io.Writer) *Courier {
	return &Courier{service: service, timeUnit: timeUnit, prompter: newPrompter(in, out)}
}

func (c *Courier) Run(ctx context.Context) error {
	c.say("=== RESTAURANT COURIER ===")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.say("")
		c.say("1. Start shift (deliver one order)")
		c.say("2. Dispatch next order (restaurant tracks the trip)")
		c.say("3. Exit")
		option, ok := c.ask("Select option: ")
		if !ok {
			return nil
		}

		switch option {
		case "1":
			c.deliver(ctx)
		case "2":
			c.dispatch(ctx)
		case "3":
			return nil
		default:
			c.say("Invalid option")
		}
	}
}

func (c *Courier) deliver(ctx context.Context) {
	c.say("Waiting at the counter for an order...")
	claimed, err := c.service.ClaimOrder(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	c.say("--> Got order %d, destination %d km away", claimed.OrderID, claimed.Distance)

	c.say("Looking for a free vehicle...")
	vehicle, err := c.service.ClaimVehicle(ctx, claimed.OrderID)
	if err != nil {
		c.fail(err)
		c.abandon(claimed.OrderID, "no vehicle")
		return
	}
	c.say("--> Vehicle %s acquired", vehicle.VehicleID)

	c.say("Out for delivery...")
	if err = travel(ctx, time.Duration(claimed.Distance)*c.timeUnit); err != nil {
		c.fail(err)
		c.abandon(claimed.OrderID, "courier stopped")
		return
	}

	c.say("Order delivered, heading back")
	if err = c.service.ConfirmDelivery(ctx, claimed.OrderID, vehicle.VehicleID); err != nil {
		c.fail(err)
		return
	}
	c.say("--> Back at the restaurant, %s returned", vehicle.VehicleID)
}

func (c *Courier) dispatch(ctx context.Context) {
	c.say("Waiting for an order and a vehicle...")
	dispatch, err := c.service.ClaimNextDelivery(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	c.say("--> %s", dispatch.Message)
}

// abandon hands a held order back. It runs on a fresh context because the
// caller's may already be canceled.
func (c *Courier) abandon(orderID int64, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.service.AbandonDelivery(ctx, orderID, reason); err != nil {
		c.fail(err)
		return
	}
	c.say("--> Order %d abandoned: %s", orderID, reason)
}

func travel(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
