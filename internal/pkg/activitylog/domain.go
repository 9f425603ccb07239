// Package activitylog defines an append-only audit trail of screen actions.
//
// Each row records one action applied to a storefront session together with
// the resulting badge count and subtotal, so interaction funnels can be
// queried afterwards and joined with distributed traces through trace_id.
// The log is never read back to rebuild a cart.
package activitylog

import "time"

// Action names a user interaction on the shop screen.
type Action string

const (
	ActionOpenSession  Action = "OPEN_SESSION"
	ActionCloseSession Action = "CLOSE_SESSION"
	ActionAddItem      Action = "ADD_ITEM"
	ActionRemoveItem   Action = "REMOVE_ITEM"
	ActionOpenCart     Action = "OPEN_CART"
	ActionCloseCart    Action = "CLOSE_CART"
	ActionCheckout     Action = "CHECKOUT"
	ActionToggleTheme  Action = "TOGGLE_THEME"
)

// Entry is a single row in the activity_log table.
type Entry struct {
	SessionID string
	Action    Action

	// ProductID is zero for actions that do not target a product.
	ProductID int

	// Badge and Subtotal describe the cart after the action was applied.
	Badge    int
	Subtotal string

	// TraceID and SpanID come from the OpenTelemetry span active when the
	// action ran. Empty when tracing is off.
	TraceID string
	SpanID  string

	At time.Time
}
