// Package ctxutil carries per-request identity through context.Context.
//
// There are no user accounts: the client ID is an opaque UUID the browser
// generates once and sends in the X-Client-Id header. It scopes favorites
// to one client and proves nothing about who the caller is.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	clientIDKey  ctxKey = "client_id"
	requestIDKey ctxKey = "request_id"
)

// WithClientID attaches the anonymous client ID parsed from X-Client-Id.
func WithClientID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, clientIDKey, id)
}

// ClientIDFromCtx reports the client ID of the request. It is false when the
// request carried no X-Client-Id header; uuid.Nil never counts as a client.
func ClientIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(clientIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID attaches the ID echoed in X-Request-Id and in log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
