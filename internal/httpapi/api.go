// Package httpapi is the portal's HTTP layer: a static route table
// mapping each path to its view and, for protected views, the role it
// requires. The access gate runs on every protected request.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"ruamngan.app/internal/auth"
	"ruamngan.app/internal/crm"
	"ruamngan.app/internal/docgen"
	"ruamngan.app/internal/obs"
	"ruamngan.app/internal/purchasing"
	"ruamngan.app/internal/quotes"
	"ruamngan.app/internal/session"
)

// API is the HTTP layer.
type API struct {
	router *mux.Router
	log    zerolog.Logger

	sessions   session.Store
	verifier   auth.Verifier
	codec      *auth.TokenCodec
	crm        *crm.Client
	quotes     quotes.Store
	purchasing *purchasing.Store
	exporter   *docgen.Exporter

	version    string
	rateBurst  int
	ratePerSec int
}

// Deps wires the API's collaborators.
type Deps struct {
	Logger     zerolog.Logger
	Sessions   session.Store
	Verifier   auth.Verifier
	Tokens     *auth.TokenCodec
	CRM        *crm.Client
	Quotes     quotes.Store
	Purchasing *purchasing.Store
	Exporter   *docgen.Exporter
	Version    string
	RateBurst  int
	RatePerSec int
}

// route is one row of the navigation table. An empty role means the
// view is public.
type route struct {
	method  string
	path    string
	role    auth.Role
	handler http.HandlerFunc
}

// New builds the API and its route table.
func New(d Deps) *API {
	a := &API{
		router:     mux.NewRouter(),
		log:        d.Logger,
		sessions:   d.Sessions,
		verifier:   d.Verifier,
		codec:      d.Tokens,
		crm:        d.CRM,
		quotes:     d.Quotes,
		purchasing: d.Purchasing,
		exporter:   d.Exporter,
		version:    d.Version,
		rateBurst:  d.RateBurst,
		ratePerSec: d.RatePerSec,
	}
	if a.rateBurst <= 0 {
		a.rateBurst = 40
	}
	if a.ratePerSec <= 0 {
		a.ratePerSec = 20
	}

	for _, rt := range a.routes() {
		h := rt.handler
		if rt.role != "" {
			h = a.protected(rt.role, h)
		}
		a.router.HandleFunc(rt.path, h).Methods(rt.method)
	}

	a.router.Handle("/metrics", obs.Handler()).Methods(http.MethodGet)
	a.router.NotFoundHandler = http.HandlerFunc(a.handleNotFound)
	a.router.MethodNotAllowedHandler = http.HandlerFunc(a.handleMethodNotAllowed)

	return a
}

// routes is the portal's navigation table.
func (a *API) routes() []route {
	return []route{
		// public
		{http.MethodGet, "/", "", a.handleRoot},
		{http.MethodGet, auth.LoginPath, "", a.handleLoginView},
		{http.MethodPost, auth.LoginPath, "", a.handleLogin},
		{http.MethodPost, "/logout", "", a.handleLogout},
		{http.MethodGet, "/healthz", "", a.handleHealthz},
		{http.MethodGet, "/readyz", "", a.handleReadyz},

		// legal department
		{http.MethodGet, "/law/dashboard", auth.RoleLaw, a.handleLawDashboard},
		{http.MethodGet, "/law/quotations", auth.RoleLaw, a.handleQuotationList},
		{http.MethodGet, "/law/quotations/{number}", auth.RoleLaw, a.handleQuotationInfo},
		{http.MethodPost, "/law/quotations/{number}/export", auth.RoleLaw, a.handleQuotationExport},
		{http.MethodGet, "/law/quotations/{number}/preview", auth.RoleLaw, a.handleQuotationPreview},

		// purchasing department
		{http.MethodGet, "/po/dashboard", auth.RolePO, a.handlePODashboard},
		{http.MethodGet, "/po/requests", auth.RolePO, a.handleRequestList},
		{http.MethodPost, "/po/requests", auth.RolePO, a.handleRequestCreate},
		{http.MethodGet, "/po/requests/{number}", auth.RolePO, a.handleRequestInfo},

		// CRM tracker
		{http.MethodGet, "/tracker/dashboard", auth.RoleTracker, a.handleTrackerDashboard},
	}
}

// Handler returns the fully wrapped handler for the server.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.router
	h = a.withSession(h)
	h = obs.Instrument(h)
	h = RateLimit(h, a.rateBurst, a.ratePerSec)
	h = MaxBodyBytes(h, 1<<20)
	h = CORS(h)
	h = SecurityHeaders(h)
	h = a.Logging(h)
	h = RequestID(h)
	return h
}
