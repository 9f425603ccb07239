package activitylog

import "context"

// Repository persists activity entries. The storefront depends on this port,
// not on SQLite directly.
type Repository interface {
	// Save appends a row; entries are never updated.
	Save(ctx context.Context, entry *Entry) error
}
