package interceptors

import (
	"context"

	"github.com/jcmexdev/storefront/internal/pkg/interceptors/constants"
	"google.golang.org/grpc/metadata"
)

// WithRequestMeta stores the request id and idempotency key in ctx and
// appends them to outgoing gRPC metadata so they cross the wire.
func WithRequestMeta(ctx context.Context, requestID, idempotencyKey string) context.Context {
	ctx = context.WithValue(ctx, constants.ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, constants.ContextKeyIdempotencyKey, idempotencyKey)
	return metadata.AppendToOutgoingContext(ctx,
		constants.HeaderXRequestId, requestID,
		constants.HeaderXIdempotencyKey, idempotencyKey,
	)
}

func RequestID(ctx context.Context) string {
	return valueOf(ctx, constants.ContextKeyRequestID, constants.HeaderXRequestId)
}

func IdempotencyKey(ctx context.Context) string {
	return valueOf(ctx, constants.ContextKeyIdempotencyKey, constants.HeaderXIdempotencyKey)
}

// GetMetadataValue looks key up in incoming then outgoing gRPC metadata.
func GetMetadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(key); len(ids) > 0 {
			return ids[0]
		}
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		if ids := md.Get(key); len(ids) > 0 {
			return ids[0]
		}
	}
	return ""
}

func valueOf(ctx context.Context, ctxKey any, mdKey string) string {
	if v, ok := ctx.Value(ctxKey).(string); ok && v != "" {
		return v
	}
	return GetMetadataValue(ctx, mdKey)
}
