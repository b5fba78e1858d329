package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestIDFromContext mendapatkan request id dari context
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}

	id, ok := val.(string)
	return id, ok
}
