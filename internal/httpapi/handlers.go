package httpapi

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	body := map[string]any{"error": msg}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		body["request_id"] = rid
	}
	writeJSON(w, status, body)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "ruamngan-portal",
		"version": a.version,
	})
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": a.version,
	})
}

// handleReadyz reports readiness: the portal is ready when its session
// and quotation stores answer a ping.
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.sessions.Ping(ctx); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "session store unavailable")
		return
	}
	if a.quotes != nil {
		if err := a.quotes.Ping(ctx); err != nil {
			writeError(w, r, http.StatusServiceUnavailable, "quotation store unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

func (a *API) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}

func (a *API) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
