package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"ruamngan.app/internal/audit"
	"ruamngan.app/internal/auth"
	"ruamngan.app/internal/session"
)

// badCredentials is the only message a failed sign-in ever shows. The
// response does not distinguish a wrong username from a wrong password.
const badCredentials = "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง"

// landingPaths maps each role to the dashboard it lands on after
// sign-in.
var landingPaths = map[auth.Role]string{
	auth.RoleLaw:     "/law/dashboard",
	auth.RolePO:      "/po/dashboard",
	auth.RoleTracker: "/tracker/dashboard",
}

type loginRequest struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLoginView describes the sign-in surface: which roles exist and
// where each one lands.
func (a *API) handleLoginView(w http.ResponseWriter, r *http.Request) {
	roles := make([]map[string]string, 0, len(landingPaths))
	for _, role := range []auth.Role{auth.RoleLaw, auth.RolePO, auth.RoleTracker} {
		roles = append(roles, map[string]string{
			"role":    string(role),
			"landing": landingPaths[role],
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"roles": roles})
}

// handleLogin verifies the submitted credentials for the requested
// role, persists a session and sets the signed cookie.
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	role, ok := auth.ParseRole(strings.TrimSpace(req.Role))
	verr := auth.ErrAuthMismatch
	if ok {
		verr = a.verifier.Verify(role, req.Username, req.Password)
	}
	if verr != nil {
		_ = audit.LogEvent(r.Context(), "portal.login.denied", map[string]any{
			"role":   req.Role,
			"reason": verr.Error(),
		})
		writeError(w, r, http.StatusUnauthorized, badCredentials)
		return
	}

	sess := session.Session{
		ID:        uuid.NewString(),
		Role:      string(role),
		Username:  req.Username,
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.sessions.Set(r.Context(), sess); err != nil {
		a.log.Error().Err(err).Msg("persist session")
		writeError(w, r, http.StatusInternalServerError, "could not persist session")
		return
	}

	token, err := a.codec.Sign(sess.ID, role)
	if err != nil {
		a.log.Error().Err(err).Msg("sign session token")
		writeError(w, r, http.StatusInternalServerError, "could not issue session")
		return
	}
	a.setSessionCookie(w, token)

	ctx := auth.ContextWithSession(r.Context(), sess)
	_ = audit.LogEvent(ctx, "portal.login", map[string]any{
		"landing": landingPaths[role],
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"role":     string(role),
		"username": sess.Username,
		"landing":  landingPaths[role],
	})
}

// handleLogout clears the persisted session and the cookie in one
// step; the next protected request redirects to the login view.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := auth.SessionFromContext(r.Context()); ok {
		if err := a.sessions.Clear(r.Context(), sess.ID); err != nil {
			a.log.Error().Err(err).Msg("clear session")
			writeError(w, r, http.StatusInternalServerError, "could not clear session")
			return
		}
		_ = audit.LogEvent(r.Context(), "portal.logout", nil)
	}
	a.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"redirect": auth.LoginPath})
}
