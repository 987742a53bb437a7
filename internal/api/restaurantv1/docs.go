// Package restaurantv1 defines the wire contract of the restaurant.v1.RestaurantService
// gRPC service: request and response messages, the JSON codec they travel with,
// the service descriptor used by servers and the client stub.
//
// Messages are plain Go structs with json tags. The codec is registered under
// the "json" content subtype at init, so clients select it with
//
//	grpc.WithDefaultCallOptions(grpc.CallContentSubtype(restaurantv1.CodecName))
//
// and servers pick it up from the request's content type.
package restaurantv1
