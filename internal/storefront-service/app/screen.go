package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jcmexdev/storefront/internal/cart"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/storefront-service/domain"
)

const (
	screenTitle     = "Shop"
	sectionTitle    = "Featured Products"
	emptyCartTitle  = "Your cart is empty"
	emptyCartHint   = "Add some products to get started"
	checkoutMessage = "Checkout coming soon!"
)

// Screen is the state of one shop screen: the cart it owns, whether the cart
// overlay is open, the current notification and the theme. All methods are
// serialized by mu, so a session behaves like a single UI thread.
type Screen struct {
	mu sync.Mutex

	// tap serializes whole actions, including the idempotency lookup and
	// store around them. It is always taken before mu.
	tap sync.Mutex

	// lastSeen is the unix-nano time of the last access, read by the idle sweeper.
	lastSeen atomic.Int64

	id      string
	catalog *catalog.Catalog
	haptics Haptics
	clock   Clock

	cart       cart.Cart
	cartOpen   bool
	theme      domain.Theme
	toast      domain.Toast
	lastHaptic domain.Intensity
}

func newScreen(id string, c *catalog.Catalog, theme domain.Theme, h Haptics, clk Clock) *Screen {
	return &Screen{
		id:      id,
		catalog: c,
		haptics: h,
		clock:   clk,
		theme:   theme,
	}
}

func (s *Screen) touch(now time.Time) { s.lastSeen.Store(now.UnixNano()) }

func (s *Screen) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastSeen.Load()))
}

// AddItem handles a tap on a product card or on the "+" control of a cart line.
func (s *Screen) AddItem(ctx context.Context, productID int) (domain.Screen, error) {
	p, err := s.catalog.Get(productID)
	if err != nil {
		return domain.Screen{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pulse(ctx, domain.IntensityMedium)
	if s.cart.Contains(p.ID) {
		s.showToast(fmt.Sprintf("Updated %s quantity", p.Name))
	} else {
		s.showToast(fmt.Sprintf("Added %s to cart", p.Name))
	}
	s.cart = cart.AddItem(s.cart, p)

	return s.snapshot(), nil
}

// RemoveItem handles the "-" control of a cart line.
func (s *Screen) RemoveItem(ctx context.Context, productID int) domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pulse(ctx, domain.IntensityLight)
	s.cart = cart.RemoveItem(s.cart, productID)

	return s.snapshot()
}

func (s *Screen) OpenCart(ctx context.Context) domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pulse(ctx, domain.IntensityLight)
	s.cartOpen = true

	return s.snapshot()
}

func (s *Screen) CloseCart(ctx context.Context) domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartOpen = false

	return s.snapshot()
}

// Checkout is a placeholder: it notifies and closes the overlay without
// creating an order. The cart is left as is.
func (s *Screen) Checkout(ctx context.Context) (domain.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return domain.Screen{}, ErrEmptyCart
	}

	s.showToast(checkoutMessage)
	s.cartOpen = false

	return s.snapshot(), nil
}

func (s *Screen) ToggleTheme(ctx context.Context) domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pulse(ctx, domain.IntensityMedium)
	s.theme = s.theme.Toggle()

	return s.snapshot()
}

func (s *Screen) Snapshot() domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Cart returns the current cart value.
func (s *Screen) Cart() cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart
}

func (s *Screen) pulse(ctx context.Context, intensity domain.Intensity) {
	s.lastHaptic = intensity
	s.haptics.Pulse(ctx, s.id, intensity)
}

// showToast replaces the visible message and schedules a hide. Earlier
// timers are not cancelled; whichever fires first hides the current toast.
func (s *Screen) showToast(message string) {
	s.toast = domain.Toast{Message: message, Visible: true}
	s.clock.AfterFunc(ToastDuration, s.hideToast)
}

func (s *Screen) hideToast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.toast.Visible = false
}

func (s *Screen) snapshot() domain.Screen {
	products := s.catalog.List()
	cards := make([]domain.CatalogCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, domain.CatalogCard{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Rating:    p.Rating,
			Price:     cart.FormatPrice(p.Price),
			Category:  p.Category,
		})
	}

	return domain.Screen{
		SessionID:    s.id,
		Title:        screenTitle,
		SectionTitle: sectionTitle,
		Theme:        s.theme,
		Palette:      domain.PaletteFor(s.theme),
		Badge:        cart.TotalItems(s.cart),
		CartOpen:     s.cartOpen,
		Toast:        s.toast,
		LastHaptic:   s.lastHaptic,
		Catalog:      cards,
		Cart:         cartView(s.cart),
	}
}

func cartView(c cart.Cart) domain.CartView {
	summary := cart.Summarize(c)
	items := c.Items()

	view := domain.CartView{
		Lines:    make([]domain.CartLine, 0, len(items)),
		Empty:    len(items) == 0,
		Subtotal: summary.Subtotal,
		Shipping: summary.Shipping,
		Total:    summary.Total,
	}
	if view.Empty {
		view.EmptyTitle = emptyCartTitle
		view.EmptyMessage = emptyCartHint
	}
	for _, it := range items {
		view.Lines = append(view.Lines, domain.CartLine{
			ProductID: it.ID,
			Name:      it.Name,
			Image:     it.Image,
			UnitPrice: cart.FormatPrice(it.Price),
			Quantity:  it.Quantity,
		})
	}
	return view
}
