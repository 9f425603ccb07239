// Package sqlite provides a SQLite-backed implementation of activitylog.Repository.
//
// WAL mode is enabled on Open so that request handlers appending rows do not
// block readers running funnel queries.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/storefront/internal/pkg/activitylog"

	// Registers the pure-Go "sqlite" driver. No CGO, so the service image
	// builds on Alpine without a C toolchain.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.
// The table is append-only: one immutable row per storefront action, so a
// session's funnel is read back by walking its rows in id order.
const schema = `
CREATE TABLE IF NOT EXISTS activity_log (
    -- Surrogate primary key, auto-incremented by SQLite. Gives insertion order.
    id          INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Screen session the action ran against. Not UNIQUE, one row per action.
    session_id  TEXT    NOT NULL,

    -- OPEN_SESSION, ADD_ITEM, CHECKOUT, ...
    action      TEXT    NOT NULL,

    -- Product the action targeted, 0 for cart/theme/session actions.
    product_id  INTEGER NOT NULL DEFAULT 0,

    -- Badge count and formatted subtotal right after the action.
    badge       INTEGER NOT NULL DEFAULT 0,
    subtotal    TEXT    NOT NULL DEFAULT '',

    -- W3C trace_id (32 hex chars) of the request that caused the action.
    -- Lets a row be opened as a trace in Grafana/Tempo.
    trace_id    TEXT    NOT NULL DEFAULT '',

    -- W3C span_id (16 hex chars), the exact RPC within that trace.
    span_id     TEXT    NOT NULL DEFAULT '',

    -- RFC3339 stored as TEXT, SQLite has no datetime type.
    at          TEXT    NOT NULL
);

-- "All actions of session X in order", used by ListBySession.
CREATE INDEX IF NOT EXISTS idx_activity_log_session ON activity_log(session_id, id);

-- "Which session did trace Y touch", the lookup from a trace back to a row.
CREATE INDEX IF NOT EXISTS idx_activity_log_trace_id ON activity_log(trace_id);
`

// Repository is the SQLite implementation of activitylog.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
//
//	repo, err := sqlite.Open("./data/activity.db")
func Open(path string) (*Repository, error) {
	// modernc reads connection settings from _pragma query parameters.
	// WAL keeps readers off the writer's lock, busy_timeout waits for a lock
	// instead of failing with SQLITE_BUSY.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// The modernc driver registers as "sqlite", not "sqlite3".
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite allows one writer at a time; a single pooled connection turns
	// concurrent Saves into a queue instead of lock errors.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Deferred in main.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new entry. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *activitylog.Entry) error {
	const q = `
		INSERT INTO activity_log
			(session_id, action, product_id, badge, subtotal, trace_id, span_id, at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.SessionID,
		string(entry.Action),
		entry.ProductID,
		entry.Badge,
		entry.Subtotal,
		entry.TraceID,
		entry.SpanID,
		entry.At.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save activity for %q: %w", entry.SessionID, err)
	}
	return nil
}

// ListBySession returns every entry of a session in insertion order.
func (r *Repository) ListBySession(ctx context.Context, sessionID string) ([]activitylog.Entry, error) {
	const q = `
		SELECT session_id, action, product_id, badge, subtotal, trace_id, span_id, at
		FROM   activity_log
		WHERE  session_id = ?
		ORDER  BY id ASC`

	rows, err := r.db.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list activity for %q: %w", sessionID, err)
	}
	defer rows.Close()

	var out []activitylog.Entry
	for rows.Next() {
		var (
			e  activitylog.Entry
			at string
		)
		if err := rows.Scan(&e.SessionID, &e.Action, &e.ProductID, &e.Badge, &e.Subtotal, &e.TraceID, &e.SpanID, &at); err != nil {
			return nil, fmt.Errorf("sqlite: scan activity: %w", err)
		}
		if e.At, err = parseRFC3339(at); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate activity: %w", err)
	}
	return out, nil
}

// applySchema is idempotent thanks to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
