package restaurantv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "restaurant.v1.RestaurantService"

const (
	RestaurantService_PlaceOrder_FullMethodName        = "/" + ServiceName + "/PlaceOrder"
	RestaurantService_QueryOrderStatus_FullMethodName  = "/" + ServiceName + "/QueryOrderStatus"
	RestaurantService_QueryOrderItems_FullMethodName   = "/" + ServiceName + "/QueryOrderItems"
	RestaurantService_ClaimNextDelivery_FullMethodName = "/" + ServiceName + "/ClaimNextDelivery"
	RestaurantService_ClaimOrder_FullMethodName        = "/" + ServiceName + "/ClaimOrder"
	RestaurantService_ClaimVehicle_FullMethodName      = "/" + ServiceName + "/ClaimVehicle"
	RestaurantService_ConfirmDelivery_FullMethodName   = "/" + ServiceName + "/ConfirmDelivery"
	RestaurantService_AbandonDelivery_FullMethodName   = "/" + ServiceName + "/AbandonDelivery"
)

// RestaurantServiceServer is implemented by the service.
type RestaurantServiceServer interface {
	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error)
	QueryOrderStatus(context.Context, *OrderStatusRequest) (*OrderStatusResponse, error)
	QueryOrderItems(context.Context, *OrderItemsRequest) (*OrderItemsResponse, error)
	ClaimNextDelivery(context.Context, *ClaimNextDeliveryRequest) (*ClaimNextDeliveryResponse, error)
	ClaimOrder(context.Context, *ClaimOrderRequest) (*ClaimOrderResponse, error)
	ClaimVehicle(context.Context, *ClaimVehicleRequest) (*ClaimVehicleResponse, error)
	ConfirmDelivery(context.Context, *ConfirmDeliveryRequest) (*ConfirmDeliveryResponse, error)
	AbandonDelivery(context.Context, *AbandonDeliveryRequest) (*AbandonDeliveryResponse, error)
}

// UnimplementedRestaurantServiceServer answers every method with codes.Unimplemented.
// Embed it to stay compatible when methods are added.
type UnimplementedRestaurantServiceServer struct{}

func (UnimplementedRestaurantServiceServer) PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlaceOrder not implemented")
}

func (UnimplementedRestaurantServiceServer) QueryOrderStatus(context.Context, *OrderStatusRequest) (*OrderStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QueryOrderStatus not implemented")
}

func (UnimplementedRestaurantServiceServer) QueryOrderItems(context.Context, *OrderItemsRequest) (*OrderItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QueryOrderItems not implemented")
}

func (UnimplementedRestaurantServiceServer) ClaimNextDelivery(context.Context, *ClaimNextDeliveryRequest) (*ClaimNextDeliveryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClaimNextDelivery not implemented")
}

func (UnimplementedRestaurantServiceServer) ClaimOrder(context.Context, *ClaimOrderRequest) (*ClaimOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClaimOrder not implemented")
}

func (UnimplementedRestaurantServiceServer) ClaimVehicle(context.Context, *ClaimVehicleRequest) (*ClaimVehicleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClaimVehicle not implemented")
}

func (UnimplementedRestaurantServiceServer) ConfirmDelivery(context.Context, *ConfirmDeliveryRequest) (*ConfirmDeliveryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmDelivery not implemented")
}

func (UnimplementedRestaurantServiceServer) AbandonDelivery(context.Context, *AbandonDeliveryRequest) (*AbandonDeliveryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AbandonDelivery not implemented")
}

// RegisterRestaurantServiceServer attaches srv to s.
func RegisterRestaurantServiceServer(s grpc.ServiceRegistrar, srv RestaurantServiceServer) {
	s.RegisterService(&RestaurantService_ServiceDesc, srv)
}

// unary builds the method handler of one RPC: decode the request, then call
// the server directly or through the interceptor chain.
func unary[Req, Resp any](
	fullMethod string,
	call func(RestaurantServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(RestaurantServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RestaurantService_ServiceDesc describes the service for grpc.Server.
var RestaurantService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RestaurantServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PlaceOrder",
			Handler:    unary(RestaurantService_PlaceOrder_FullMethodName, RestaurantServiceServer.PlaceOrder),
		},
		{
			MethodName: "QueryOrderStatus",
			Handler:    unary(RestaurantService_QueryOrderStatus_FullMethodName, RestaurantServiceServer.QueryOrderStatus),
		},
		{
			MethodName: "QueryOrderItems",
			Handler:    unary(RestaurantService_QueryOrderItems_FullMethodName, RestaurantServiceServer.QueryOrderItems),
		},
		{
			MethodName: "ClaimNextDelivery",
			Handler:    unary(RestaurantService_ClaimNextDelivery_FullMethodName, RestaurantServiceServer.ClaimNextDelivery),
		},
		{
			MethodName: "ClaimOrder",
			Handler:    unary(RestaurantService_ClaimOrder_FullMethodName, RestaurantServiceServer.ClaimOrder),
		},
		{
			MethodName: "ClaimVehicle",
			Handler:    unary(RestaurantService_ClaimVehicle_FullMethodName, RestaurantServiceServer.ClaimVehicle),
		},
		{
			MethodName: "ConfirmDelivery",
			Handler:    unary(RestaurantService_ConfirmDelivery_FullMethodName, RestaurantServiceServer.ConfirmDelivery),
		},
		{
			MethodName: "AbandonDelivery",
			Handler:    unary(RestaurantService_AbandonDelivery_FullMethodName, RestaurantServiceServer.AbandonDelivery),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "restaurant/v1/restaurant.proto",
}

// RestaurantServiceClient is the client API of the service.
type RestaurantServiceClient interface {
	PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderResponse, error)
	QueryOrderStatus(ctx context.Context, in *OrderStatusRequest, opts ...grpc.CallOption) (*OrderStatusResponse, error)
	QueryOrderItems(ctx context.Context, in *OrderItemsRequest, opts ...grpc.CallOption) (*OrderItemsResponse, error)
	ClaimNextDelivery(ctx context.Context, in *ClaimNextDeliveryRequest, opts ...grpc.CallOption) (*ClaimNextDeliveryResponse, error)
	ClaimOrder(ctx context.Context, in *ClaimOrderRequest, opts ...grpc.CallOption) (*ClaimOrderResponse, error)
	ClaimVehicle(ctx context.Context, in *ClaimVehicleRequest, opts ...grpc.CallOption) (*ClaimVehicleResponse, error)
	ConfirmDelivery(ctx context.Context, in *ConfirmDeliveryRequest, opts ...grpc.CallOption) (*ConfirmDeliveryResponse, error)
	AbandonDelivery(ctx context.Context, in *AbandonDeliveryRequest, opts ...grpc.CallOption) (*AbandonDeliveryResponse, error)
}

type restaurantServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRestaurantServiceClient(cc grpc.ClientConnInterface) RestaurantServiceClient {
	return &restaurantServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restaurantServiceClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderResponse, error) {
	return invoke[PlaceOrderRequest, PlaceOrderResponse](ctx, c.cc, RestaurantService_PlaceOrder_FullMethodName, in, opts)
}

func (c *restaurantServiceClient) QueryOrderStatus(ctx context.Context, in *OrderStatusRequest, opts ...grpc.CallOption) (*OrderStatusResponse, error) {
	return invoke[OrderStatusRequest, OrderStatusResponse](ctx, c.cc, RestaurantService_QueryOrderStatus_FullMethodName, in, opts)
}

func (c *restaurantServiceClient) QueryOrderItems(ctx context.Context, in *OrderItemsRequest, opts ...grpc.CallOption) (*OrderItemsResponse, error) {
	return invoke[OrderItemsRequest, OrderItemsResponse](ctx, c.cc, RestaurantService_QueryOrderItems_FullMethodName, in, opts)
}

func (c *restaurantServiceClient) ClaimNextDelivery(ctx context.Context, in *ClaimNextDeliveryRequest, opts ...grpc.CallOption) (*ClaimNextDeliveryResponse, error) {
	return invoke[ClaimNextDeliveryRequest, ClaimNextDeliveryResponse](ctx, c.cc, RestaurantService_ClaimNextDelivery_FullMethodName, in, opts)
}

func (c *restaurantServiceClient) ClaimOrder(ctx context.Context, in *ClaimOrderRequest, opts ...grpc.CallOption) (*ClaimOrderResponse, error) {
	return invoke[ClaimOrderRequest, ClaimOrderResponse](ctx, c.cc, RestaurantService_ClaimOrder_FullMethodName, in, opts)
}

func (c *restaurantServiceClient) ClaimVehicle(ctx context.Context, in *ClaimVehicleRequest, opts ...grpc.CallOption) (*ClaimVehicleResponse, error) {
	return invoke[ClaimVehicleRequest, ClaimVehicleResponse](ctx, c.cc, RestaurantService_ClaimVehicle_FullMethodName, in, opts)
}

func (c *restaurantServiceClient) ConfirmDelivery(ctx context.Context, in *ConfirmDeliveryRequest, opts ...grpc.CallOption) (*ConfirmDeliveryResponse, error) {
	return invoke[ConfirmDeliveryRequest, ConfirmDeliveryResponse](ctx, c.cc, RestaurantService_ConfirmDelivery_FullMethodName, in, opts)
}

func (c *restaurantServiceClient) AbandonDelivery(ctx context.Context, in *AbandonDeliveryRequest, opts ...grpc.CallOption) (*AbandonDeliveryResponse, error) {
	return invoke[AbandonDeliveryRequest, AbandonDeliveryResponse](ctx, c.cc, RestaurantService_AbandonDelivery_FullMethodName, in, opts)
}
