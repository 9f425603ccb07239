package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/jcmexdev/storefront/internal/cart"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/pkg/activitylog"
	"github.com/jcmexdev/storefront/internal/pkg/cache"
	"github.com/jcmexdev/storefront/internal/pkg/interceptors"
	"github.com/jcmexdev/storefront/internal/storefront-service/domain"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyCart       = errors.New("cart is empty")
)

const defaultIdempotencyTTL = 10 * time.Minute

// Service keeps one Screen per session and applies user actions to it.
type Service struct {
	catalog      *catalog.Catalog
	haptics      Haptics
	clock        Clock
	defaultTheme domain.Theme
	newID        func() string

	cache          cache.Cache        // nil disables idempotent replays
	idempotencyTTL time.Duration
	activity       activitylog.Repository // nil-safe: nothing is recorded if nil

	// idleTTL drops sessions nobody touched for that long; 0 keeps them forever.
	idleTTL time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Screen
}

type Option func(*Service)

func WithHaptics(h Haptics) Option { return func(s *Service) { s.haptics = h } }

func WithClock(c Clock) Option { return func(s *Service) { s.clock = c } }

func WithDefaultTheme(t domain.Theme) Option { return func(s *Service) { s.defaultTheme = t } }

func WithIDGenerator(fn func() string) Option { return func(s *Service) { s.newID = fn } }

func WithActivityLog(repo activitylog.Repository) Option {
	return func(s *Service) { s.activity = repo }
}

// WithIdempotency replays the first response of a mutating action for
// requests that repeat the same idempotency key within ttl.
func WithIdempotency(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		if ttl > 0 {
			s.idempotencyTTL = ttl
		}
	}
}

// WithSessionIdleTTL lets SweepIdle close sessions untouched for longer than ttl.
func WithSessionIdleTTL(ttl time.Duration) Option {
	return func(s *Service) { s.idleTTL = ttl }
}

func WithNow(fn func() time.Time) Option { return func(s *Service) { s.now = fn } }

func NewService(c *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:        c,
		haptics:        logHaptics{},
		clock:          realClock{},
		defaultTheme:   domain.ThemeLight,
		newID:          uuid.NewString,
		idempotencyTTL: defaultIdempotencyTTL,
		now:            time.Now,
		sessions:       make(map[string]*Screen),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Products lists the catalog in display order.
func (s *Service) Products(ctx context.Context) []catalog.Product {
	return s.catalog.List()
}

// OpenSession creates a screen. appearance is the platform color scheme
// ("light" or "dark"); empty means the configured default.
func (s *Service) OpenSession(ctx context.Context, appearance string) (domain.Screen, error) {
	theme, err := domain.ParseTheme(appearance, s.defaultTheme)
	if err != nil {
		return domain.Screen{}, err
	}

	id := s.newID()
	scr := newScreen(id, s.catalog, theme, s.haptics, s.clock)
	scr.touch(s.now())

	s.mu.Lock()
	s.sessions[id] = scr
	s.mu.Unlock()

	slog.InfoContext(ctx, "session opened", "session_id", id, "theme", string(theme))

	snap := scr.Snapshot()
	s.record(ctx, snap, activitylog.ActionOpenSession, 0)
	return snap, nil
}

func (s *Service) GetScreen(ctx context.Context, sessionID string) (domain.Screen, error) {
	scr, err := s.screen(sessionID)
	if err != nil {
		return domain.Screen{}, err
	}
	return scr.Snapshot(), nil
}

func (s *Service) CloseSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	scr, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return errors.Wrapf(ErrSessionNotFound, "id %s", sessionID)
	}

	slog.InfoContext(ctx, "session closed", "session_id", sessionID)
	s.record(ctx, scr.Snapshot(), activitylog.ActionCloseSession, 0)
	return nil
}

func (s *Service) AddItem(ctx context.Context, sessionID string, productID int) (domain.Screen, error) {
	return s.apply(ctx, sessionID, activitylog.ActionAddItem, productID, func(scr *Screen) (domain.Screen, error) {
		return scr.AddItem(ctx, productID)
	})
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int) (domain.Screen, error) {
	return s.apply(ctx, sessionID, activitylog.ActionRemoveItem, productID, func(scr *Screen) (domain.Screen, error) {
		return scr.RemoveItem(ctx, productID), nil
	})
}

func (s *Service) OpenCart(ctx context.Context, sessionID string) (domain.Screen, error) {
	return s.apply(ctx, sessionID, activitylog.ActionOpenCart, 0, func(scr *Screen) (domain.Screen, error) {
		return scr.OpenCart(ctx), nil
	})
}

func (s *Service) CloseCart(ctx context.Context, sessionID string) (domain.Screen, error) {
	return s.apply(ctx, sessionID, activitylog.ActionCloseCart, 0, func(scr *Screen) (domain.Screen, error) {
		return scr.CloseCart(ctx), nil
	})
}

func (s *Service) Checkout(ctx context.Context, sessionID string) (domain.Screen, error) {
	return s.apply(ctx, sessionID, activitylog.ActionCheckout, 0, func(scr *Screen) (domain.Screen, error) {
		return scr.Checkout(ctx)
	})
}

func (s *Service) ToggleTheme(ctx context.Context, sessionID string) (domain.Screen, error) {
	return s.apply(ctx, sessionID, activitylog.ActionToggleTheme, 0, func(scr *Screen) (domain.Screen, error) {
		return scr.ToggleTheme(ctx), nil
	})
}

// Cart exposes the raw cart of a session.
func (s *Service) Cart(ctx context.Context, sessionID string) (cart.Cart, error) {
	scr, err := s.screen(sessionID)
	if err != nil {
		return cart.Cart{}, err
	}
	return scr.Cart(), nil
}

func (s *Service) screen(sessionID string) (*Screen, error) {
	s.mu.RLock()
	scr, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "id %s", sessionID)
	}
	scr.touch(s.now())
	return scr, nil
}

// SweepIdle closes every session idle for longer than the configured TTL and
// returns how many were dropped.
func (s *Service) SweepIdle(ctx context.Context) int {
	if s.idleTTL <= 0 {
		return 0
	}
	now := s.now()

	var expired []*Screen
	s.mu.Lock()
	for id, scr := range s.sessions {
		if scr.idleSince(now) > s.idleTTL {
			expired = append(expired, scr)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, scr := range expired {
		snap := scr.Snapshot()
		slog.InfoContext(ctx, "session expired", "session_id", snap.SessionID, "idle_ttl", s.idleTTL)
		s.record(ctx, snap, activitylog.ActionCloseSession, 0)
	}
	return len(expired)
}

// RunSweeper calls SweepIdle every interval until ctx is cancelled.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) error {
	if s.idleTTL <= 0 || interval <= 0 {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.SweepIdle(ctx)
		}
	}
}

func (s *Service) apply(
	ctx context.Context,
	sessionID string,
	action activitylog.Action,
	productID int,
	fn func(*Screen) (domain.Screen, error),
) (domain.Screen, error) {
	scr, err := s.screen(sessionID)
	if err != nil {
		return domain.Screen{}, err
	}

	// A retry that lands while the first attempt is still running must wait
	// for its cached result instead of applying the action a second time.
	scr.tap.Lock()
	defer scr.tap.Unlock()

	key := s.idempotencyKey(ctx, sessionID, action, productID)
	if snap, ok := s.replay(ctx, key); ok {
		slog.InfoContext(ctx, "idempotent replay", "session_id", sessionID, "action", string(action))
		return snap, nil
	}

	snap, err := fn(scr)
	if err != nil {
		return domain.Screen{}, err
	}

	s.remember(ctx, key, snap)
	s.record(ctx, snap, action, productID)
	return snap, nil
}

func (s *Service) idempotencyKey(ctx context.Context, sessionID string, action activitylog.Action, productID int) string {
	if s.cache == nil {
		return ""
	}
	k := interceptors.IdempotencyKey(ctx)
	if k == "" {
		return ""
	}
	return s.cache.GenerateKey(string(action), fmt.Sprintf("%s:%d:%s", sessionID, productID, k))
}

func (s *Service) replay(ctx context.Context, key string) (domain.Screen, bool) {
	if key == "" {
		return domain.Screen{}, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "idempotency lookup failed", "key", key, "error", err)
		return domain.Screen{}, false
	}
	if raw == "" {
		return domain.Screen{}, false
	}
	var snap domain.Screen
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		slog.WarnContext(ctx, "idempotency entry unreadable", "key", key, "error", err)
		return domain.Screen{}, false
	}
	return snap, true
}

func (s *Service) remember(ctx context.Context, key string, snap domain.Screen) {
	if key == "" {
		return
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, b, s.idempotencyTTL); err != nil {
		slog.WarnContext(ctx, "idempotency store failed", "key", key, "error", err)
	}
}

func (s *Service) record(ctx context.Context, snap domain.Screen, action activitylog.Action, productID int) {
	if s.activity == nil {
		return
	}
	entry := activitylog.NewEntry(ctx, snap.SessionID, action, productID, snap.Badge, snap.Cart.Subtotal)
	if err := s.activity.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "activity log write failed", "session_id", snap.SessionID, "error", err)
	}
}
