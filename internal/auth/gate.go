package auth

import "ruamngan.app/internal/session"

// LoginPath is where denied navigations are redirected.
const LoginPath = "/login"

// Decision is the outcome of one access check.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Authorize reports whether the session may enter a route requiring
// the given role. It is a pure function of its inputs: exact role
// match, no hierarchy, no side effects. Callers must evaluate it on
// every protected request because logout can clear the session between
// two requests.
func Authorize(required Role, s *session.Session) Decision {
	if s == nil {
		return Decision{RedirectTo: LoginPath}
	}
	actual, ok := ParseRole(s.Role)
	if !ok || actual != required {
		return Decision{RedirectTo: LoginPath}
	}
	return Decision{Allowed: true}
}
