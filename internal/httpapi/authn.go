package httpapi

import (
	"net/http"

	"ruamngan.app/internal/auth"
	"ruamngan.app/internal/session"
)

// sessionCookie carries the signed session token between requests.
const sessionCookie = "ruamngan_session"

// withSession resolves the session cookie into a session record and
// attaches it to the context. An invalid, expired-from-store or
// missing cookie simply yields no session; the gate decides what that
// means per route.
func (a *API) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookie); err == nil && a.codec != nil {
			if id, err := a.codec.Parse(cookie.Value); err == nil {
				if sess, err := a.sessions.Get(r.Context(), id); err == nil {
					r = r.WithContext(auth.ContextWithSession(r.Context(), sess))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// protected runs the access gate on every request entering the route.
// Denials redirect to the login view with no body, per the portal's
// silent-redirect rule.
func (a *API) protected(required auth.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session
		if s, ok := auth.SessionFromContext(r.Context()); ok {
			sess = &s
		}
		decision := auth.Authorize(required, sess)
		if !decision.Allowed {
			http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (a *API) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *API) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
