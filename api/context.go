package api

import (
	"context"
)

type keyType string

const (
	adminIDKey   keyType = "adminID"
	requestIDKey keyType = "requestID"
)

// ctxWithAdminID attaches the authenticated admin's id to the context.
func ctxWithAdminID(ctx context.Context, adminID uint) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// ctxAdminID retrieves the authenticated admin's id from the context.
func ctxAdminID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(adminIDKey).(uint)
	return id, ok
}

// ctxWithRequestID attaches a request id to the context.
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ctxRequestID retrieves the request id from the context, empty when unset.
func ctxRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
