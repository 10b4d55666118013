// Package net provides request context helpers shared by handlers and
// middleware
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID under chi's request id key so chimw.GetReqID and
// our own helpers agree on where it lives
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx, empty when absent
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
