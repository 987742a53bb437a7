package restaurantv1

type OrderItem struct {
	Name     string `json:"name"`
	Quantity int32  `json:"quantity"`
}

type PlaceOrderRequest struct {
	Items      []OrderItem `json:"items"`
	DistanceKm int32       `json:"distance_km"`
}

type PlaceOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

type OrderStatusRequest struct {
	OrderID int64 `json:"order_id"`
}

// OrderStatusResponse carries the estimate as "<n> min".
type OrderStatusResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	EstimatedTime string `json:"estimated_time"`
}

type OrderItemsRequest struct {
	OrderID int64 `json:"order_id"`
}

// OrderItemsResponse lists the items in Message, e.g. "Items: 2x Pizza, 1x Salad".
type OrderItemsResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

type ClaimNextDeliveryRequest struct{}

type ClaimNextDeliveryResponse struct {
	OrderID   int64  `json:"order_id"`
	VehicleID string `json:"vehicle_id"`
	Message   string `json:"message"`
}

type ClaimOrderRequest struct{}

type ClaimOrderResponse struct {
	OrderID  int64 `json:"order_id"`
	Distance int32 `json:"distance"`
}

type ClaimVehicleRequest struct {
	OrderID int64 `json:"order_id"`
}

type ClaimVehicleResponse struct {
	VehicleID string `json:"vehicle_id"`
}

type ConfirmDeliveryRequest struct {
	OrderID   int64  `json:"order_id"`
	VehicleID string `json:"vehicle_id"`
}

type ConfirmDeliveryResponse struct{}

type AbandonDeliveryRequest struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason,omitempty"`
}

type AbandonDeliveryResponse struct{}
