package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jcmexdev/storefront/internal/api-gateway/infra/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachTracingMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handler.Healthz)
	r.Get("/products", handler.ListProducts)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", handler.OpenSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", handler.GetScreen)
			r.Delete("/", handler.CloseSession)

			r.Post("/cart/items/{productID}", handler.AddItem)
			r.Delete("/cart/items/{productID}", handler.RemoveItem)
			r.Post("/cart/open", handler.OpenCart)
			r.Post("/cart/close", handler.CloseCart)

			r.Post("/checkout", handler.Checkout)
			r.Post("/theme/toggle", handler.ToggleTheme)
		})
	})

	return otelhttp.NewHandler(r, "api-gateway")
}
