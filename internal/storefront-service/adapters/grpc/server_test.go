package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	storefrontv1 "github.com/jcmexdev/storefront/internal/api/storefront/v1"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/pkg/cache"
	"github.com/jcmexdev/storefront/internal/pkg/interceptors"
	"github.com/jcmexdev/storefront/internal/storefront-service/app"
)

type manualClock struct{}

func (manualClock) AfterFunc(time.Duration, func()) {}

func newClient(t *testing.T, opts ...app.Option) storefrontv1.StorefrontClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(interceptors.TraceServerInterceptor()))
	svc := app.NewService(catalog.Default(), append([]app.Option{app.WithClock(manualClock{})}, opts...)...)
	storefrontv1.RegisterStorefrontServer(srv, NewServer(svc))

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return storefrontv1.NewStorefrontClient(conn)
}

func TestListProducts(t *testing.T) {
	client := newClient(t)

	resp, err := client.ListProducts(context.Background(), &storefrontv1.ListProductsRequest{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(resp.Products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(resp.Products))
	}
	if p := resp.Products[0]; p.Id != 1 || p.Price != "$129.99" {
		t.Fatalf("unexpected first product: %+v", p)
	}
}

func TestScreenRoundTrip(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	opened, err := client.OpenSession(ctx, &storefrontv1.OpenSessionRequest{Appearance: "dark"})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	scr := opened.GetScreen()
	if scr.Theme != "dark" || scr.Palette.Background != "#000000" {
		t.Fatalf("expected dark screen, got theme=%s background=%s", scr.Theme, scr.Palette.Background)
	}
	if !scr.Cart.Empty || scr.Cart.Total != "$0.00" {
		t.Fatalf("expected empty cart, got %+v", scr.Cart)
	}

	id := scr.SessionId
	for _, pid := range []int{1, 1, 3} {
		if _, err := client.AddItem(ctx, &storefrontv1.ProductActionRequest{SessionId: id, ProductId: pid}); err != nil {
			t.Fatalf("AddItem(%d): %v", pid, err)
		}
	}

	resp, err := client.OpenCart(ctx, &storefrontv1.SessionRequest{SessionId: id})
	if err != nil {
		t.Fatalf("OpenCart: %v", err)
	}
	scr = resp.GetScreen()
	if scr.Badge != 3 || !scr.CartOpen {
		t.Fatalf("expected badge 3 and open cart, got badge=%d open=%v", scr.Badge, scr.CartOpen)
	}
	if scr.Cart.Subtotal != "$309.97" || scr.Cart.Shipping != "Free" {
		t.Fatalf("unexpected totals: %+v", scr.Cart)
	}
	if len(scr.Cart.Lines) != 2 || scr.Cart.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines: %+v", scr.Cart.Lines)
	}

	resp, err = client.Checkout(ctx, &storefrontv1.SessionRequest{SessionId: id})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if resp.Screen.CartOpen || resp.Screen.Toast.Message != "Checkout coming soon!" {
		t.Fatalf("unexpected checkout screen: open=%v toast=%+v", resp.Screen.CartOpen, resp.Screen.Toast)
	}

	if _, err := client.CloseSession(ctx, &storefrontv1.SessionRequest{SessionId: id}); err != nil {
		t.Fatalf("CloseSession: %v", err)
	}
}

func TestErrorCodes(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	opened, err := client.OpenSession(ctx, &storefrontv1.OpenSessionRequest{})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	id := opened.Screen.SessionId

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{
			name: "unknown session",
			call: func() error {
				_, err := client.GetScreen(ctx, &storefrontv1.SessionRequest{SessionId: "missing"})
				return err
			},
			want: codes.NotFound,
		},
		{
			name: "unknown product",
			call: func() error {
				_, err := client.AddItem(ctx, &storefrontv1.ProductActionRequest{SessionId: id, ProductId: 99})
				return err
			},
			want: codes.NotFound,
		},
		{
			name: "empty checkout",
			call: func() error {
				_, err := client.Checkout(ctx, &storefrontv1.SessionRequest{SessionId: id})
				return err
			},
			want: codes.FailedPrecondition,
		},
		{
			name: "bad appearance",
			call: func() error {
				_, err := client.OpenSession(ctx, &storefrontv1.OpenSessionRequest{Appearance: "sepia"})
				return err
			},
			want: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(tt.call()); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestIdempotencyKeyCrossesTheWire(t *testing.T) {
	client := newClient(t, app.WithIdempotency(cache.NewMemoryCache("storefront-test"), time.Minute))
	ctx := context.Background()

	opened, err := client.OpenSession(ctx, &storefrontv1.OpenSessionRequest{})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	id := opened.Screen.SessionId

	retryCtx := interceptors.WithRequestMeta(ctx, "req-1", "tap-1")
	for i := 0; i < 3; i++ {
		if _, err := client.AddItem(retryCtx, &storefrontv1.ProductActionRequest{SessionId: id, ProductId: 2}); err != nil {
			t.Fatalf("AddItem attempt %d: %v", i, err)
		}
	}

	resp, err := client.GetScreen(ctx, &storefrontv1.SessionRequest{SessionId: id})
	if err != nil {
		t.Fatalf("GetScreen: %v", err)
	}
	if resp.Screen.Badge != 1 {
		t.Fatalf("expected retried tap to count once, got badge %d", resp.Screen.Badge)
	}
}
