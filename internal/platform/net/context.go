// Package net holds request-scoped values shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

var keyLocale ctxKey

// WithRequest stores the request id where chi's RequestID middleware would, plus the tip locale
func WithRequest(ctx context.Context, reqID, locale string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if locale != "" {
		ctx = context.WithValue(ctx, keyLocale, locale)
	}
	return ctx
}

// RequestID returns the request id on ctx, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Locale returns the negotiated tip locale on ctx, or ""
func Locale(ctx context.Context) string {
	s, _ := ctx.Value(keyLocale).(string)
	return s
}
