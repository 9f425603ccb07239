package activitylog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// TraceInfo holds the OTel identifiers extracted from a context.
type TraceInfo struct {
	// TraceID is the W3C trace ID (32 lowercase hex chars).
	TraceID string

	// SpanID is the W3C span ID (16 lowercase hex chars).
	SpanID string
}

// ExtractTraceInfo reads the active span from ctx and returns its ids as hex.
//
// How the span gets there:
//  1. The gateway's otelhttp middleware starts a span per request and the
//     otelgrpc client handler writes it into the traceparent header.
//  2. otelgrpc.NewServerHandler (registered in cmd/storefront-service) reads
//     that header and starts the server span, storing it in ctx.
//  3. In local mode there is no hop; the gateway's own span is in ctx.
//  4. trace.SpanFromContext finds it, and IsValid rejects the zero value.
//
// Both fields are empty when ctx carries no valid span, e.g. in unit tests
// or with tracing disabled.
func ExtractTraceInfo(ctx context.Context) TraceInfo {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return TraceInfo{}
	}

	return TraceInfo{
		TraceID: sc.TraceID().String(), // e.g. "4bf92f3577b34da6a3ce929d0e0e4736"
		SpanID:  sc.SpanID().String(),  // e.g. "00f067aa0ba902b7"
	}
}

// NewEntry builds an Entry stamped with the current time and the trace info
// found in ctx.
//
//	entry := activitylog.NewEntry(ctx, sessionID, activitylog.ActionAddItem, 1, 2, "$259.98")
//	_ = repo.Save(ctx, entry)
func NewEntry(ctx context.Context, sessionID string, action Action, productID, badge int, subtotal string) *Entry {
	ti := ExtractTraceInfo(ctx)

	return &Entry{
		SessionID: sessionID,
		Action:    action,
		ProductID: productID,
		Badge:     badge,
		Subtotal:  subtotal,
		TraceID:   ti.TraceID,
		SpanID:    ti.SpanID,
		At:        time.Now().UTC(),
	}
}
