package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jcmexdev/storefront/internal/api-gateway/infra/adapters/service"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/pkg/cache"
	grpcadapter "github.com/jcmexdev/storefront/internal/storefront-service/adapters/grpc"
	"github.com/jcmexdev/storefront/internal/storefront-service/app"
)

type noTimers struct{}

func (noTimers) AfterFunc(time.Duration, func()) {}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := app.NewService(catalog.Default(),
		app.WithClock(noTimers{}),
		app.WithIdempotency(cache.NewMemoryCache("gateway-test"), time.Minute),
	)
	storefront := service.NewLocalStorefrontService(grpcadapter.NewServer(svc))
	srv := httptest.NewServer(NewRouter(NewHandler(storefront)))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body string, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

func openSession(t *testing.T, base string, headers map[string]string, body string) ScreenResponse {
	t.Helper()
	resp := do(t, http.MethodPost, base+"/sessions", body, headers)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("open session: status %d", resp.StatusCode)
	}
	return decode[ScreenResponse](t, resp)
}

func TestHealthzAndProducts(t *testing.T) {
	srv := newTestServer(t)

	if resp := do(t, http.MethodGet, srv.URL+"/healthz", "", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: status %d", resp.StatusCode)
	}

	resp := do(t, http.MethodGet, srv.URL+"/products", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("products: status %d", resp.StatusCode)
	}
	products := decode[[]ProductResponse](t, resp)
	if len(products) != 6 || products[5].Name != "USB-C Hub" || products[5].Price != "$59.99" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestOpenSessionAppearance(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		headers map[string]string
		body    string
		want    string
	}{
		{"default", nil, "", "light"},
		{"client hint", map[string]string{HeaderColorScheme: "dark"}, "", "dark"},
		{"body", nil, `{"appearance":"dark"}`, "dark"},
		{"hint wins over body", map[string]string{HeaderColorScheme: "light"}, `{"appearance":"dark"}`, "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr := openSession(t, srv.URL, tt.headers, tt.body)
			if scr.Theme != tt.want {
				t.Fatalf("expected %s theme, got %s", tt.want, scr.Theme)
			}
			if scr.Title != "Shop" || scr.SectionTitle != "Featured Products" || len(scr.Catalog) != 6 {
				t.Fatalf("unexpected screen: %+v", scr)
			}
		})
	}

	t.Run("invalid appearance", func(t *testing.T) {
		resp := do(t, http.MethodPost, srv.URL+"/sessions", `{"appearance":"sepia"}`, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestShoppingFlow(t *testing.T) {
	srv := newTestServer(t)
	scr := openSession(t, srv.URL, nil, "")
	base := srv.URL + "/sessions/" + scr.SessionID

	for _, path := range []string{"/cart/items/1", "/cart/items/2", "/cart/items/2"} {
		resp := do(t, http.MethodPost, base+path, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("POST %s: status %d", path, resp.StatusCode)
		}
		scr = decode[ScreenResponse](t, resp)
	}
	if scr.Badge != 3 || scr.Toast.Message != "Updated Smart Watch quantity" || !scr.Toast.Visible {
		t.Fatalf("unexpected screen after adds: badge=%d toast=%+v", scr.Badge, scr.Toast)
	}
	if scr.Cart.Total != "$729.97" {
		t.Fatalf("expected $729.97, got %s", scr.Cart.Total)
	}

	scr = decode[ScreenResponse](t, do(t, http.MethodDelete, base+"/cart/items/2", "", nil))
	if scr.Badge != 2 || scr.LastHaptic != "light" {
		t.Fatalf("unexpected screen after remove: badge=%d haptic=%s", scr.Badge, scr.LastHaptic)
	}

	scr = decode[ScreenResponse](t, do(t, http.MethodPost, base+"/cart/open", "", nil))
	if !scr.CartOpen || len(scr.Cart.Lines) != 2 {
		t.Fatalf("expected open cart with 2 lines, got %+v", scr.Cart)
	}

	scr = decode[ScreenResponse](t, do(t, http.MethodPost, base+"/theme/toggle", "", nil))
	if scr.Theme != "dark" || scr.Palette.Background != "#000000" {
		t.Fatalf("expected dark theme, got %s", scr.Theme)
	}

	scr = decode[ScreenResponse](t, do(t, http.MethodPost, base+"/checkout", "", nil))
	if scr.CartOpen || scr.Toast.Message != "Checkout coming soon!" {
		t.Fatalf("unexpected checkout screen: %+v", scr)
	}

	if resp := do(t, http.MethodDelete, base, "", nil); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("close session: status %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodGet, base, "", nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("closed session should be gone, got %d", resp.StatusCode)
	}
}

func TestErrorResponses(t *testing.T) {
	srv := newTestServer(t)
	scr := openSession(t, srv.URL, nil, "")
	base := srv.URL + "/sessions/" + scr.SessionID

	tests := []struct {
		name       string
		method     string
		url        string
		wantStatus int
		wantCode   string
	}{
		{"unknown session", http.MethodGet, srv.URL + "/sessions/nope", http.StatusNotFound, "NOT_FOUND"},
		{"unknown product", http.MethodPost, base + "/cart/items/42", http.StatusNotFound, "NOT_FOUND"},
		{"bad product id", http.MethodPost, base + "/cart/items/abc", http.StatusBadRequest, "invalid_product_id"},
		{"empty checkout", http.MethodPost, base + "/checkout", http.StatusConflict, "FAILED_PRECONDITION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, tt.url, "", nil)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if body := decode[ErrorResponse](t, resp); body.Error != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, body.Error)
			}
		})
	}
}

func TestIdempotentTap(t *testing.T) {
	srv := newTestServer(t)
	scr := openSession(t, srv.URL, nil, "")
	url := srv.URL + "/sessions/" + scr.SessionID + "/cart/items/3"

	headers := map[string]string{"X-Idempotency-Key": "tap-7"}
	for i := 0; i < 2; i++ {
		if resp := do(t, http.MethodPost, url, "", headers); resp.StatusCode != http.StatusOK {
			t.Fatalf("attempt %d: status %d", i, resp.StatusCode)
		}
	}

	scr = decode[ScreenResponse](t, do(t, http.MethodGet, srv.URL+"/sessions/"+scr.SessionID, "", nil))
	if scr.Badge != 1 {
		t.Fatalf("expected one unit after a retried tap, got %d", scr.Badge)
	}
	if scr.Cart.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected quantity %d", scr.Cart.Lines[0].Quantity)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newTestServer(t)
	resp := do(t, http.MethodGet, srv.URL+"/healthz", "", map[string]string{"X-Request-Id": "req-123"})
	if got := resp.Header.Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}
