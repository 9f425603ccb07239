package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "storefront.v1.Storefront"

const (
	Storefront_ListProducts_FullMethodName = "/" + ServiceName + "/ListProducts"
	Storefront_OpenSession_FullMethodName  = "/" + ServiceName + "/OpenSession"
	Storefront_GetScreen_FullMethodName    = "/" + ServiceName + "/GetScreen"
	Storefront_CloseSession_FullMethodName = "/" + ServiceName + "/CloseSession"
	Storefront_AddItem_FullMethodName      = "/" + ServiceName + "/AddItem"
	Storefront_RemoveItem_FullMethodName   = "/" + ServiceName + "/RemoveItem"
	Storefront_OpenCart_FullMethodName     = "/" + ServiceName + "/OpenCart"
	Storefront_CloseCart_FullMethodName    = "/" + ServiceName + "/CloseCart"
	Storefront_Checkout_FullMethodName     = "/" + ServiceName + "/Checkout"
	Storefront_ToggleTheme_FullMethodName  = "/" + ServiceName + "/ToggleTheme"
)

// StorefrontServer is implemented by the storefront service.
type StorefrontServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	OpenSession(context.Context, *OpenSessionRequest) (*ScreenResponse, error)
	GetScreen(context.Context, *SessionRequest) (*ScreenResponse, error)
	CloseSession(context.Context, *SessionRequest) (*CloseSessionResponse, error)
	AddItem(context.Context, *ProductActionRequest) (*ScreenResponse, error)
	RemoveItem(context.Context, *ProductActionRequest) (*ScreenResponse, error)
	OpenCart(context.Context, *SessionRequest) (*ScreenResponse, error)
	CloseCart(context.Context, *SessionRequest) (*ScreenResponse, error)
	Checkout(context.Context, *SessionRequest) (*ScreenResponse, error)
	ToggleTheme(context.Context, *SessionRequest) (*ScreenResponse, error)
}

// UnimplementedStorefrontServer can be embedded to stay forward compatible.
type UnimplementedStorefrontServer struct{}

func (UnimplementedStorefrontServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedStorefrontServer) OpenSession(context.Context, *OpenSessionRequest) (*ScreenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenSession not implemented")
}
func (UnimplementedStorefrontServer) GetScreen(context.Context, *SessionRequest) (*ScreenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetScreen not implemented")
}
func (UnimplementedStorefrontServer) CloseSession(context.Context, *SessionRequest) (*CloseSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CloseSession not implemented")
}
func (UnimplementedStorefrontServer) AddItem(context.Context, *ProductActionRequest) (*ScreenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItem not implemented")
}
func (UnimplementedStorefrontServer) RemoveItem(context.Context, *ProductActionRequest) (*ScreenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}
func (UnimplementedStorefrontServer) OpenCart(context.Context, *SessionRequest) (*ScreenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenCart not implemented")
}
func (UnimplementedStorefrontServer) CloseCart(context.Context, *SessionRequest) (*ScreenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CloseCart not implemented")
}
func (UnimplementedStorefrontServer) Checkout(context.Context, *SessionRequest) (*ScreenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Checkout not implemented")
}
func (UnimplementedStorefrontServer) ToggleTheme(context.Context, *SessionRequest) (*ScreenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleTheme not implemented")
}

func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&Storefront_ServiceDesc, srv)
}

func unary[Req, Resp any](fullMethod string, call func(StorefrontServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StorefrontServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StorefrontServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var Storefront_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListProducts", Handler: unary(Storefront_ListProducts_FullMethodName, StorefrontServer.ListProducts)},
		{MethodName: "OpenSession", Handler: unary(Storefront_OpenSession_FullMethodName, StorefrontServer.OpenSession)},
		{MethodName: "GetScreen", Handler: unary(Storefront_GetScreen_FullMethodName, StorefrontServer.GetScreen)},
		{MethodName: "CloseSession", Handler: unary(Storefront_CloseSession_FullMethodName, StorefrontServer.CloseSession)},
		{MethodName: "AddItem", Handler: unary(Storefront_AddItem_FullMethodName, StorefrontServer.AddItem)},
		{MethodName: "RemoveItem", Handler: unary(Storefront_RemoveItem_FullMethodName, StorefrontServer.RemoveItem)},
		{MethodName: "OpenCart", Handler: unary(Storefront_OpenCart_FullMethodName, StorefrontServer.OpenCart)},
		{MethodName: "CloseCart", Handler: unary(Storefront_CloseCart_FullMethodName, StorefrontServer.CloseCart)},
		{MethodName: "Checkout", Handler: unary(Storefront_Checkout_FullMethodName, StorefrontServer.Checkout)},
		{MethodName: "ToggleTheme", Handler: unary(Storefront_ToggleTheme_FullMethodName, StorefrontServer.ToggleTheme)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/storefront.json",
}

// StorefrontClient is the client API for the storefront service.
type StorefrontClient interface {
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error)
	GetScreen(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error)
	CloseSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CloseSessionResponse, error)
	AddItem(ctx context.Context, in *ProductActionRequest, opts ...grpc.CallOption) (*ScreenResponse, error)
	RemoveItem(ctx context.Context, in *ProductActionRequest, opts ...grpc.CallOption) (*ScreenResponse, error)
	OpenCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error)
	CloseCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error)
	Checkout(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error)
	ToggleTheme(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error)
}

type storefrontClient struct {
	cc grpc.ClientConnInterface
}

func NewStorefrontClient(cc grpc.ClientConnInterface) StorefrontClient {
	return &storefrontClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsRequest, ListProductsResponse](ctx, c.cc, Storefront_ListProducts_FullMethodName, in, opts)
}

func (c *storefrontClient) OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error) {
	return invoke[OpenSessionRequest, ScreenResponse](ctx, c.cc, Storefront_OpenSession_FullMethodName, in, opts)
}

func (c *storefrontClient) GetScreen(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error) {
	return invoke[SessionRequest, ScreenResponse](ctx, c.cc, Storefront_GetScreen_FullMethodName, in, opts)
}

func (c *storefrontClient) CloseSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CloseSessionResponse, error) {
	return invoke[SessionRequest, CloseSessionResponse](ctx, c.cc, Storefront_CloseSession_FullMethodName, in, opts)
}

func (c *storefrontClient) AddItem(ctx context.Context, in *ProductActionRequest, opts ...grpc.CallOption) (*ScreenResponse, error) {
	return invoke[ProductActionRequest, ScreenResponse](ctx, c.cc, Storefront_AddItem_FullMethodName, in, opts)
}

func (c *storefrontClient) RemoveItem(ctx context.Context, in *ProductActionRequest, opts ...grpc.CallOption) (*ScreenResponse, error) {
	return invoke[ProductActionRequest, ScreenResponse](ctx, c.cc, Storefront_RemoveItem_FullMethodName, in, opts)
}

func (c *storefrontClient) OpenCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error) {
	return invoke[SessionRequest, ScreenResponse](ctx, c.cc, Storefront_OpenCart_FullMethodName, in, opts)
}

func (c *storefrontClient) CloseCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error) {
	return invoke[SessionRequest, ScreenResponse](ctx, c.cc, Storefront_CloseCart_FullMethodName, in, opts)
}

func (c *storefrontClient) Checkout(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error) {
	return invoke[SessionRequest, ScreenResponse](ctx, c.cc, Storefront_Checkout_FullMethodName, in, opts)
}

func (c *storefrontClient) ToggleTheme(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ScreenResponse, error) {
	return invoke[SessionRequest, ScreenResponse](ctx, c.cc, Storefront_ToggleTheme_FullMethodName, in, opts)
}
