package auth

import (
	"context"

	"ruamngan.app/internal/session"
)

type sessionContextKey struct{}

// ContextWithSession attaches the loaded session to the context.
func ContextWithSession(ctx context.Context, s session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, &s)
}

// SessionFromContext extracts the session, when one was attached.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	if ctx == nil {
		return session.Session{}, false
	}
	v, ok := ctx.Value(sessionContextKey{}).(*session.Session)
	if !ok || v == nil {
		return session.Session{}, false
	}
	return *v, true
}
