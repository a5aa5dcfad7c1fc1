package xlog

import (
	"context"

	"github.com/google/uuid"
)

const (
	correlationIDKey = "correlationId"

	// CorrelationIDHeader carries the id across HTTP requests and kafka messages.
	CorrelationIDHeader = "X-Correlation-Id"
)

type correlationIDCtxKey struct{}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDCtxKey{}, id)
}

// EnsureCorrelationID keeps an existing id or generates a new one.
func EnsureCorrelationID(ctx context.Context) context.Context {
	if CorrelationID(ctx) != "" {
		return ctx
	}
	return WithCorrelationID(ctx, uuid.NewString())
}

func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDCtxKey{}).(string)
	return id
}
