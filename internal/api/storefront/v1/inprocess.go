package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
)

// NewInProcessClient serves StorefrontClient calls straight from srv without
// a network hop. Call options are ignored.
func NewInProcessClient(srv StorefrontServer) StorefrontClient {
	return inProcessClient{srv: srv}
}

type inProcessClient struct {
	srv StorefrontServer
}

func (c inProcessClient) ListProducts(ctx context.Context, in *ListProductsRequest, _ ...grpc.CallOption) (*ListProductsResponse, error) {
	return c.srv.ListProducts(ctx, in)
}

func (c inProcessClient) OpenSession(ctx context.Context, in *OpenSessionRequest, _ ...grpc.CallOption) (*ScreenResponse, error) {
	return c.srv.OpenSession(ctx, in)
}

func (c inProcessClient) GetScreen(ctx context.Context, in *SessionRequest, _ ...grpc.CallOption) (*ScreenResponse, error) {
	return c.srv.GetScreen(ctx, in)
}

func (c inProcessClient) CloseSession(ctx context.Context, in *SessionRequest, _ ...grpc.CallOption) (*CloseSessionResponse, error) {
	return c.srv.CloseSession(ctx, in)
}

func (c inProcessClient) AddItem(ctx context.Context, in *ProductActionRequest, _ ...grpc.CallOption) (*ScreenResponse, error) {
	return c.srv.AddItem(ctx, in)
}

func (c inProcessClient) RemoveItem(ctx context.Context, in *ProductActionRequest, _ ...grpc.CallOption) (*ScreenResponse, error) {
	return c.srv.RemoveItem(ctx, in)
}

func (c inProcessClient) OpenCart(ctx context.Context, in *SessionRequest, _ ...grpc.CallOption) (*ScreenResponse, error) {
	return c.srv.OpenCart(ctx, in)
}

func (c inProcessClient) CloseCart(ctx context.Context, in *SessionRequest, _ ...grpc.CallOption) (*ScreenResponse, error) {
	return c.srv.CloseCart(ctx, in)
}

func (c inProcessClient) Checkout(ctx context.Context, in *SessionRequest, _ ...grpc.CallOption) (*ScreenResponse, error) {
	return c.srv.Checkout(ctx, in)
}

func (c inProcessClient) ToggleTheme(ctx context.Context, in *SessionRequest, _ ...grpc.CallOption) (*ScreenResponse, error) {
	return c.srv.ToggleTheme(ctx, in)
}
