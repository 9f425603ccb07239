package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jcmexdev/storefront/internal/storefront-service/domain"
)

// ToastDuration is how long a notification stays visible.
const ToastDuration = 3 * time.Second

// Haptics triggers tactile feedback for a session.
type Haptics interface {
	Pulse(ctx context.Context, sessionID string, intensity domain.Intensity)
}

// Clock schedules fire-and-forget callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// logHaptics records pulses in the log; the client fires the actual motor
// from Screen.LastHaptic.
type logHaptics struct{}

func (logHaptics) Pulse(ctx context.Context, sessionID string, intensity domain.Intensity) {
	slog.DebugContext(ctx, "haptic pulse", "session_id", sessionID, "intensity", string(intensity))
}
