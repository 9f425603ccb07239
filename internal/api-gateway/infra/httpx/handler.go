package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/storefront/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/storefront/internal/api-gateway/core/ports"
	"github.com/jcmexdev/storefront/internal/pkg/interceptors"
)

// HeaderColorScheme is the client hint carrying the platform appearance.
const HeaderColorScheme = "Sec-CH-Prefers-Color-Scheme"

// Handler turns HTTP calls into storefront actions and renders the resulting screen.
type Handler struct {
	storefront ports.StorefrontService
}

func NewHandler(s ports.StorefrontService) *Handler {
	return &Handler{storefront: s}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.storefront.ListProducts(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProducts(products))
}

// OpenSession starts a screen. The appearance comes from the client hint
// header, then from the JSON body; both may be absent.
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	appearance := r.Header.Get(HeaderColorScheme)
	if appearance == "" {
		var req OpenSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		appearance = req.Appearance
	}

	scr, err := h.storefront.OpenSession(r.Context(), appearance)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "session opened",
		"request_id", interceptors.RequestID(r.Context()),
		"session_id", scr.SessionID,
	)
	w.Header().Set("Location", "/sessions/"+scr.SessionID)
	writeJSON(w, http.StatusCreated, mapScreen(scr))
}

func (h *Handler) GetScreen(w http.ResponseWriter, r *http.Request) {
	h.renderScreen(w, r)(h.storefront.GetScreen(r.Context(), chi.URLParam(r, "sessionID")))
}

func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.storefront.CloseSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	h.renderScreen(w, r)(h.storefront.AddItem(r.Context(), chi.URLParam(r, "sessionID"), productID))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	h.renderScreen(w, r)(h.storefront.RemoveItem(r.Context(), chi.URLParam(r, "sessionID"), productID))
}

func (h *Handler) OpenCart(w http.ResponseWriter, r *http.Request) {
	h.renderScreen(w, r)(h.storefront.OpenCart(r.Context(), chi.URLParam(r, "sessionID")))
}

func (h *Handler) CloseCart(w http.ResponseWriter, r *http.Request) {
	h.renderScreen(w, r)(h.storefront.CloseCart(r.Context(), chi.URLParam(r, "sessionID")))
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	h.renderScreen(w, r)(h.storefront.Checkout(r.Context(), chi.URLParam(r, "sessionID")))
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.renderScreen(w, r)(h.storefront.ToggleTheme(r.Context(), chi.URLParam(r, "sessionID")))
}

func (h *Handler) renderScreen(w http.ResponseWriter, r *http.Request) func(*entity.Screen, error) {
	return func(scr *entity.Screen, err error) {
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, mapScreen(scr))
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := httpStatusFromGRPC(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "storefront call failed",
			"request_id", interceptors.RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeError(w, status, code, msg)
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return 0, false
	}
	return id, true
}

func mapProducts(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Rating:   p.Rating,
			Category: p.Category,
		}
	}
	return out
}

func mapScreen(s *entity.Screen) ScreenResponse {
	lines := make([]CartLineResponse, len(s.Cart.Lines))
	for i, l := range s.Cart.Lines {
		lines[i] = CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}

	return ScreenResponse{
		SessionID:    s.SessionID,
		Title:        s.Title,
		SectionTitle: s.SectionTitle,
		Theme:        s.Theme,
		Palette: PaletteResponse{
			Background:    s.Palette.Background,
			Surface:       s.Palette.Surface,
			Text:          s.Palette.Text,
			TextSecondary: s.Palette.TextSecondary,
			Border:        s.Palette.Border,
			CardBg:        s.Palette.CardBg,
		},
		Badge:      s.Badge,
		CartOpen:   s.CartOpen,
		Toast:      ToastResponse{Message: s.Toast.Message, Visible: s.Toast.Visible},
		LastHaptic: s.LastHaptic,
		Catalog:    mapProducts(s.Catalog),
		Cart: CartResponse{
			Lines:        lines,
			Empty:        s.Cart.Empty,
			EmptyTitle:   s.Cart.EmptyTitle,
			EmptyMessage: s.Cart.EmptyMessage,
			Subtotal:     s.Cart.Subtotal,
			Shipping:     s.Cart.Shipping,
			Total:        s.Cart.Total,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
