// Package audit records sign-in, sign-out and export events.
package audit

import (
	"context"
	"errors"
	"strings"

	"ruamngan.app/internal/auth"
	"ruamngan.app/internal/obs"
)

type ctxKey string

const requestIDKey ctxKey = "audit_request_id"

// WithRequestID attaches the request identifier to the context for audit logging.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// requestIDFromContext extracts the audit request id from context if present.
func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// LogEvent writes an audit entry enriched with request and session context.
func LogEvent(ctx context.Context, event string, fields map[string]any) error {
	event = strings.TrimSpace(event)
	if event == "" {
		return errors.New("event name is required")
	}
	logger := obs.Logger()
	entry := logger.Info().Str("type", "audit").Str("event", event)
	if rid := requestIDFromContext(ctx); rid != "" {
		entry = entry.Str("request_id", rid)
	}
	if sess, ok := auth.SessionFromContext(ctx); ok {
		entry = entry.Str("role", sess.Role).Str("username", sess.Username)
	}
	entry.Fields(fields).Msg("audit")
	return nil
}
