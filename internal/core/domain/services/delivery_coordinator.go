package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/vehicle"
	"restaurant/internal/pkg/errs"
)

const (
	// PlacementMessage is returned to customers for every accepted order.
	PlacementMessage = "Order received and being prepared"

	defaultTimeUnit = time.Second
)

// ErrCoordinatorIsClosed is the cause attached to every claim rejected after Close.
var ErrCoordinatorIsClosed = errors.New("delivery coordinator is closed")

// CoordinatorConfig sizes the coordinator. Zero capacities and time unit fall
// back to the package defaults.
type CoordinatorConfig struct {
	QueueCapacity   int
	VehicleCapacity int

	// TimeUnit is the wall-clock length of one estimated unit.
	TimeUnit time.Duration

	// LeaseGrace is added to the estimate before an explicitly confirmed
	// delivery counts as stale. Zero disables AbandonExpired.
	LeaseGrace time.Duration

	Now func() time.Time

	// OnAutoDelivered runs outside the lock after a timed delivery completes.
	OnAutoDelivered func(order.Snapshot)

	// Logger reports failures of timed deliveries, which have no caller to
	// return them to. Defaults to slog.Default.
	Logger *slog.Logger
}

// Placement is the result of PlaceOrder.
type Placement struct {
	OrderID order.ID
	Message string
}

// ClaimedOrder is the result of ClaimOrder.
type ClaimedOrder struct {
	OrderID  order.ID
	Distance int
}

// Dispatch is the result of ClaimNextDelivery.
type Dispatch struct {
	OrderID   order.ID
	VehicleID string
	Message   string
}

// AbandonedDelivery describes a lease given up by Abandon or AbandonExpired.
type AbandonedDelivery struct {
	OrderID   order.ID
	VehicleID string
	Reason    string
}

// LeaseView describes an order that left the queue and is not finished yet.
type LeaseView struct {
	ID        kernel.UUID
	OrderID   order.ID
	VehicleID string
	ClaimedAt time.Time
	// Deadline is zero for timed deliveries and when expiry is disabled.
	Deadline time.Time
	Timed    bool
}

// Stats is a consistent view of queue, fleet and leases.
type Stats struct {
	Queued          int
	QueueCapacity   int
	VehiclesFree    int
	VehiclesInUse   int
	VehicleCapacity int
	ActiveLeases    int
	OrdersPlaced    int
}

// lease tracks an order between leaving the queue and reaching a final status.
type lease struct {
	id             kernel.UUID
	orderID        order.ID
	estimatedUnits int
	vehicle        *vehicle.Vehicle
	claimedAt      time.Time

	// selfCompleting leases are finished by their timer, never by ConfirmDelivery.
	selfCompleting bool
	timer          *time.Timer
}

// DeliveryCoordinator admits orders into the queue and pairs them with vehicles.
//
// It is a monitor: one mutex guards the queue, the fleet, id allocation and the
// open leases. Every change that can unblock a waiter closes the current wake
// channel and installs a fresh one, so blocked claimers re-check their
// condition. A waiter checks and takes inside the same critical section, which
// means a successful check is never followed by an empty take.
//
// Two worker protocols are offered and can be mixed:
//
//   - ClaimOrder, ClaimVehicle, ConfirmDelivery: the worker holds the order,
//     then a vehicle, and reports completion explicitly.
//   - ClaimNextDelivery: order and vehicle are taken together and a timer
//     completes the delivery after the estimated time.
//
// When two resources are needed they are always taken order first, vehicle
// second, inside one critical section. Any resource taken by a call that then
// fails is returned before the error is reported.
//
// Example usage:
//
//	c, _ := services.NewDeliveryCoordinator(services.CoordinatorConfig{})
//	placement, err := c.PlaceOrder(items, 3)
//	...
//	claimed, err := c.ClaimOrder(ctx)
//	vehicleID, err := c.ClaimVehicle(ctx, claimed.OrderID)
//	err = c.ConfirmDelivery(claimed.OrderID, vehicleID)
type DeliveryCoordinator struct {
	mu     sync.Mutex
	wake   chan struct{}
	closed bool

	registry *OrderRegistry
	queue    *OrderQueue
	pool     *VehiclePool
	leases   map[order.ID]*lease

	timeUnit        time.Duration
	leaseGrace      time.Duration
	now             func() time.Time
	onAutoDelivered func(order.Snapshot)
	logger          *slog.Logger

	completions sync.WaitGroup
}

func NewDeliveryCoordinator(cfg CoordinatorConfig) (*DeliveryCoordinator, error) {
	if cfg.QueueCapacity == 0 {
		cfg.QueueCapacity = DefaultQueueCapacity
	}
	if cfg.VehicleCapacity == 0 {
		cfg.VehicleCapacity = DefaultVehicleCapacity
	}
	if cfg.TimeUnit <= 0 {
		cfg.TimeUnit = defaultTimeUnit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	queue, queueErr := NewOrderQueue(cfg.QueueCapacity)
	pool, poolErr := NewVehiclePool(cfg.VehicleCapacity)
	if err := errors.Join(queueErr, poolErr); err != nil {
		return nil, err
	}

	return &DeliveryCoordinator{
		wake:            make(chan struct{}),
		registry:        NewOrderRegistry(cfg.Now),
		queue:           queue,
		pool:            pool,
		leases:          make(map[order.ID]*lease),
		timeUnit:        cfg.TimeUnit,
		leaseGrace:      cfg.LeaseGrace,
		now:             cfg.Now,
		onAutoDelivered: cfg.OnAutoDelivered,
		logger:          cfg.Logger.With("component", "delivery-coordinator"),
	}, nil
}

// PlaceOrder registers a new Pending order and queues it. Capacity check, id
// allocation and enqueue happen as one step, so a rejected order never
// consumes an id.
func (c *DeliveryCoordinator) PlaceOrder(items []order.Item, distance int) (Placement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Placement{}, errs.NewResourceIsUnavailableErrorWithCause("order intake", ErrCoordinatorIsClosed)
	}
	if c.queue.IsFull() {
		return Placement{}, errs.NewResourceIsExhaustedError("order queue", c.queue.Capacity())
	}

	o, err := c.registry.Submit(items, distance)
	if err != nil {
		return Placement{}, err
	}
	if !c.queue.TryEnqueue(o) {
		return Placement{}, errs.NewInvariantIsViolatedError("order queue accepted a check but refused the order")
	}

	c.signal()
	return Placement{OrderID: o.ID(), Message: PlacementMessage}, nil
}

// ClaimOrder blocks until an order is queued, then takes the oldest one and
// marks it Claimed. The caller must follow up with ClaimVehicle or Abandon.
func (c *DeliveryCoordinator) ClaimOrder(ctx context.Context) (ClaimedOrder, error) {
	var claimed ClaimedOrder

	err := c.await(ctx, func() (bool, error) {
		if c.queue.Len() == 0 {
			return false, nil
		}

		o, ok := c.queue.Dequeue()
		if !ok {
			return false, errs.NewResourceIsUnavailableError("order queue")
		}
		if err := c.registry.Update(o.ID(), (*order.Order).Claim); err != nil {
			return false, errs.NewInvariantIsViolatedErrorWithCause(
				"queued order is not pending",
				errors.Join(err, c.restoreOrder(o)),
			)
		}

		c.leases[o.ID()] = c.openLease(o, nil)
		claimed = ClaimedOrder{OrderID: o.ID(), Distance: o.EstimatedUnits()}
		return true, nil
	})

	return claimed, err
}

// ClaimVehicle blocks until a vehicle is free and binds it to a Claimed order,
// moving the order to InDelivery. It fails at once, without waiting, when the
// order is not Claimed or already has a vehicle, and stops waiting with the
// same error if the order is abandoned meanwhile.
func (c *DeliveryCoordinator) ClaimVehicle(ctx context.Context, orderID order.ID) (string, error) {
	var vehicleID string

	err := c.await(ctx, func() (bool, error) {
		l, err := c.claimedLease(orderID)
		if err != nil {
			return false, err
		}
		if c.pool.Available() == 0 {
			return false, nil
		}

		v, ok := c.pool.Acquire()
		if !ok {
			return false, errs.NewResourceIsUnavailableError("vehicle pool")
		}
		if err = c.registry.Update(orderID, func(o *order.Order) error { return o.Dispatch(v.ID()) }); err != nil {
			return false, errors.Join(err, c.releaseVehicle(v))
		}

		l.vehicle = v
		vehicleID = v.ID()
		return true, nil
	})

	return vehicleID, err
}

// ConfirmDelivery completes an InDelivery order claimed with ClaimOrder. The
// vehicle must be the one bound to the order; it goes back to the pool and
// the order becomes Delivered. A repeated confirm is rejected and releases
// nothing. If the pool refuses the vehicle the order stays Delivered and the
// InvariantIsViolated error is returned.
func (c *DeliveryCoordinator) ConfirmDelivery(orderID order.ID, vehicleID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.leases[orderID]
	if !ok {
		return c.inactiveLeaseError(orderID, "confirm")
	}
	switch {
	case l.selfCompleting:
		return errs.NewPreconditionIsNotMetErrorWithCause(
			fmt.Sprintf("order %s", orderID),
			errors.New("delivery is completed by its timer"),
		)
	case l.vehicle == nil:
		return errs.NewPreconditionIsNotMetErrorWithCause(
			fmt.Sprintf("order %s", orderID),
			errors.New("no vehicle is bound to the order"),
		)
	case l.vehicle.ID() != vehicleID:
		return errs.NewPreconditionIsNotMetErrorWithCause(
			fmt.Sprintf("order %s", orderID),
			fmt.Errorf("vehicle %q is not bound to the order", vehicleID),
		)
	}

	if err := c.registry.Update(orderID, (*order.Order).Deliver); err != nil {
		return err
	}

	delete(c.leases, orderID)
	return c.releaseVehicle(l.vehicle)
}

// ClaimNextDelivery blocks until both an order and a vehicle are free, takes
// them together and marks the order InDelivery. It returns immediately after
// pairing; a timer releases the vehicle and marks the order Delivered once
// the estimated time has elapsed.
func (c *DeliveryCoordinator) ClaimNextDelivery(ctx context.Context) (Dispatch, error) {
	var dispatch Dispatch

	err := c.await(ctx, func() (bool, error) {
		if c.queue.Len() == 0 || c.pool.Available() == 0 {
			return false, nil
		}

		o, ok := c.queue.Dequeue()
		if !ok {
			return false, errs.NewResourceIsUnavailableError("order queue")
		}
		v, ok := c.pool.Acquire()
		if !ok {
			return false, errors.Join(errs.NewResourceIsUnavailableError("vehicle pool"), c.restoreOrder(o))
		}
		if err := c.registry.Update(o.ID(), func(rec *order.Order) error { return rec.Pair(v.ID()) }); err != nil {
			return false, errs.NewInvariantIsViolatedErrorWithCause(
				"queued order is not pending",
				errors.Join(err, c.releaseVehicle(v), c.restoreOrder(o)),
			)
		}

		l := c.openLease(o, v)
		l.selfCompleting = true
		c.leases[o.ID()] = l

		c.completions.Add(1)
		l.timer = time.AfterFunc(c.deliveryTime(l), func() { c.completeTimed(l) })

		dispatch = Dispatch{
			OrderID:   o.ID(),
			VehicleID: v.ID(),
			Message:   fmt.Sprintf("Order %s is on its way with %s", o.ID(), v.ID()),
		}
		return true, nil
	})

	return dispatch, err
}

// Abandon gives up a Claimed or InDelivery order, returning its vehicle to the
// pool if one was bound. When the pool refuses that vehicle the order is still
// abandoned: the result is filled in and the error is returned with it.
func (c *DeliveryCoordinator) Abandon(orderID order.ID, reason string) (AbandonedDelivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.leases[orderID]
	if !ok {
		return AbandonedDelivery{}, c.inactiveLeaseError(orderID, "abandon")
	}
	return c.abandon(l, reason)
}

// AbandonExpired abandons every explicitly confirmed lease whose estimate plus
// grace period ended before now. Timed deliveries complete on their own and
// are never expired.
func (c *DeliveryCoordinator) AbandonExpired(now time.Time) ([]AbandonedDelivery, error) {
	if c.leaseGrace <= 0 {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		abandoned []AbandonedDelivery
		failures  []error
	)
	for _, id := range slices.Sorted(maps.Keys(c.leases)) {
		l := c.leases[id]
		if l.selfCompleting || !now.After(c.deadline(l)) {
			continue
		}

		a, err := c.abandon(l, "lease expired")
		if err != nil {
			failures = append(failures, err)
		}
		if a.OrderID != 0 {
			abandoned = append(abandoned, a)
		}
	}

	return abandoned, errors.Join(failures...)
}

// Order returns a snapshot of any order ever placed.
func (c *DeliveryCoordinator) Order(id order.ID) (order.Snapshot, error) {
	return c.registry.Get(id)
}

func (c *DeliveryCoordinator) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	free := c.pool.Available()
	return Stats{
		Queued:          c.queue.Len(),
		QueueCapacity:   c.queue.Capacity(),
		VehiclesFree:    free,
		VehiclesInUse:   c.pool.Capacity() - free,
		VehicleCapacity: c.pool.Capacity(),
		ActiveLeases:    len(c.leases),
		OrdersPlaced:    c.registry.Len(),
	}
}

// Fleet lists every vehicle and whether it is out on a delivery.
func (c *DeliveryCoordinator) Fleet() []VehicleState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pool.Snapshot()
}

// Leases lists open leases ordered by order id.
func (c *DeliveryCoordinator) Leases() []LeaseView {
	c.mu.Lock()
	defer c.mu.Unlock()

	views := make([]LeaseView, 0, len(c.leases))
	for _, id := range slices.Sorted(maps.Keys(c.leases)) {
		l := c.leases[id]
		view := LeaseView{
			ID:        l.id,
			OrderID:   l.orderID,
			ClaimedAt: l.claimedAt,
			Timed:     l.selfCompleting,
		}
		if l.vehicle != nil {
			view.VehicleID = l.vehicle.ID()
		}
		if !l.selfCompleting && c.leaseGrace > 0 {
			view.Deadline = c.deadline(l)
		}
		views = append(views, view)
	}
	return views
}

// Close stops accepting orders and claims, wakes every waiter and waits until
// scheduled timed deliveries have completed or ctx is done.
func (c *DeliveryCoordinator) Close(ctx context.Context) error {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		c.signal()
	}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.completions.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// await runs try under the lock until it reports done or fails, sleeping on
// the wake channel in between. A canceled ctx ends the wait without taking
// anything.
func (c *DeliveryCoordinator) await(ctx context.Context, try func() (bool, error)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return errs.NewResourceIsUnavailableErrorWithCause("delivery coordinator", ErrCoordinatorIsClosed)
		}
		done, err := try()
		wake := c.wake
		c.mu.Unlock()

		if err != nil || done {
			return err
		}

		select {
		case <-wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// signal wakes every waiter. Callers hold c.mu.
func (c *DeliveryCoordinator) signal() {
	close(c.wake)
	c.wake = make(chan struct{})
}

func (c *DeliveryCoordinator) openLease(o *order.Order, v *vehicle.Vehicle) *lease {
	return &lease{
		id:             kernel.NewUUID(),
		orderID:        o.ID(),
		estimatedUnits: o.EstimatedUnits(),
		vehicle:        v,
		claimedAt:      c.now(),
	}
}

// claimedLease returns the lease of a Claimed order that has no vehicle yet.
func (c *DeliveryCoordinator) claimedLease(orderID order.ID) (*lease, error) {
	l, ok := c.leases[orderID]
	if !ok {
		return nil, c.inactiveLeaseError(orderID, "claim a vehicle for")
	}
	if l.vehicle != nil {
		return nil, errs.NewPreconditionIsNotMetErrorWithCause(
			fmt.Sprintf("order %s", orderID),
			fmt.Errorf("vehicle %s is already bound to the order", l.vehicle.ID()),
		)
	}
	return l, nil
}

func (c *DeliveryCoordinator) inactiveLeaseError(orderID order.ID, action string) error {
	snapshot, err := c.registry.Get(orderID)
	if err != nil {
		return err
	}
	return errs.NewPreconditionIsNotMetErrorWithCause(
		fmt.Sprintf("order %s", orderID),
		fmt.Errorf("%s is not a valid status to %s", snapshot.Status, action),
	)
}

func (c *DeliveryCoordinator) abandon(l *lease, reason string) (AbandonedDelivery, error) {
	if err := c.registry.Update(l.orderID, (*order.Order).Abandon); err != nil {
		return AbandonedDelivery{}, err
	}

	delete(c.leases, l.orderID)
	if l.timer != nil && l.timer.Stop() {
		c.completions.Done()
	}

	abandoned := AbandonedDelivery{OrderID: l.orderID, Reason: reason}
	if l.vehicle == nil {
		return abandoned, nil
	}
	abandoned.VehicleID = l.vehicle.ID()
	return abandoned, c.releaseVehicle(l.vehicle)
}

// completeTimed finishes a ClaimNextDelivery lease. It does nothing when the
// lease was abandoned first.
func (c *DeliveryCoordinator) completeTimed(l *lease) {
	defer c.completions.Done()

	c.mu.Lock()
	if c.leases[l.orderID] != l {
		c.mu.Unlock()
		return
	}

	delete(c.leases, l.orderID)
	err := c.registry.Update(l.orderID, (*order.Order).Deliver)
	releaseErr := c.releaseVehicle(l.vehicle)
	c.mu.Unlock()

	if failure := errors.Join(err, releaseErr); failure != nil {
		c.logger.Error("Timed delivery did not complete cleanly",
			"order_id", l.orderID, "vehicle_id", l.vehicle.ID(), "error", failure)
	}
	if err != nil || c.onAutoDelivered == nil {
		return
	}
	if snapshot, getErr := c.registry.Get(l.orderID); getErr == nil {
		c.onAutoDelivered(snapshot)
	}
}

// restoreOrder puts an order taken by a failed claim back at the head of the
// queue. Callers hold c.mu and have just dequeued it, so there should be room;
// an InvariantIsViolated error means the order is out of the queue for good.
func (c *DeliveryCoordinator) restoreOrder(o *order.Order) error {
	if err := c.queue.PushFront(o); err != nil {
		return err
	}
	c.signal()
	return nil
}

// releaseVehicle returns a vehicle owned by the caller and wakes waiters. A
// release the pool refuses changes nothing and is reported as
// InvariantIsViolated. Callers hold c.mu.
func (c *DeliveryCoordinator) releaseVehicle(v *vehicle.Vehicle) error {
	if err := c.pool.Release(v); err != nil {
		return err
	}
	c.signal()
	return nil
}

// deliveryTime saturates at the largest Duration instead of wrapping.
func (c *DeliveryCoordinator) deliveryTime(l *lease) time.Duration {
	units := time.Duration(l.estimatedUnits)
	if units > 0 && c.timeUnit > math.MaxInt64/units {
		return math.MaxInt64
	}
	return units * c.timeUnit
}

func (c *DeliveryCoordinator) deadline(l *lease) time.Time {
	d := c.deliveryTime(l)
	if c.leaseGrace > math.MaxInt64-d {
		return l.claimedAt.Add(math.MaxInt64)
	}
	return l.claimedAt.Add(d + c.leaseGrace)
}
