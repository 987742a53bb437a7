package http

import "time"

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	Items      []OrderItem `json:"items"`
	DistanceKm int         `json:"distance_km"`
}

type PlaceOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

type OrderStatus struct {
	OrderID       int64  `json:"order_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	EstimatedTime string `json:"estimated_time"`
	VehicleID     string `json:"vehicle_id,omitempty"`
}

type OrderItems struct {
	OrderID int64       `json:"order_id"`
	Message string      `json:"message"`
	Items   []OrderItem `json:"items"`
}

type OrderEvent struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	VehicleID string    `json:"vehicle_id,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}

type OrderHistory struct {
	OrderID int64        `json:"order_id"`
	Status  string       `json:"status"`
	Events  []OrderEvent `json:"events"`
}

type ClaimedOrder struct {
	OrderID  int64 `json:"order_id"`
	Distance int   `json:"distance"`
}

type ClaimedVehicle struct {
	OrderID   int64  `json:"order_id"`
	VehicleID string `json:"vehicle_id"`
}

type ConfirmDeliveryRequest struct {
	VehicleID string `json:"vehicle_id"`
}

type AbandonDeliveryRequest struct {
	Reason string `json:"reason"`
}

type AbandonedDelivery struct {
	OrderID   int64  `json:"order_id"`
	VehicleID string `json:"vehicle_id,omitempty"`
	Reason    string `json:"reason"`
}

type Dispatch struct {
	OrderID   int64  `json:"order_id"`
	VehicleID string `json:"vehicle_id"`
	Message   string `json:"message"`
}

type Vehicle struct {
	ID    string `json:"id"`
	InUse bool   `json:"in_use"`
}

type Lease struct {
	ID        string     `json:"id"`
	OrderID   int64      `json:"order_id"`
	VehicleID string     `json:"vehicle_id,omitempty"`
	ClaimedAt time.Time  `json:"claimed_at"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Timed     bool       `json:"timed"`
}

type Fleet struct {
	Queued          int       `json:"queued"`
	QueueCapacity   int       `json:"queue_capacity"`
	VehiclesFree    int       `json:"vehicles_free"`
	VehiclesInUse   int       `json:"vehicles_in_use"`
	VehicleCapacity int       `json:"vehicle_capacity"`
	ActiveLeases    int       `json:"active_leases"`
	OrdersPlaced    int       `json:"orders_placed"`
	Vehicles        []Vehicle `json:"vehicles"`
	Leases          []Lease   `json:"leases"`
}
