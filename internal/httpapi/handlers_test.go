package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"ruamngan.app/internal/auth"
	"ruamngan.app/internal/crm"
	"ruamngan.app/internal/docgen"
	"ruamngan.app/internal/purchasing"
	"ruamngan.app/internal/quotes"
	"ruamngan.app/internal/session"
)

type apiClient struct {
	baseURL string
	client  *http.Client
	t       *testing.T
}

// newTestAPI spins up the portal against in-memory stores and the
// tracker stub at trackerURL. An empty trackerURL gets a stub that
// answers both collections with empty arrays.
func newTestAPI(t *testing.T, trackerURL string) *apiClient {
	t.Helper()

	if trackerURL == "" {
		stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		}))
		t.Cleanup(stub.Close)
		trackerURL = stub.URL
	}

	codec, err := auth.NewTokenCodec("test-secret")
	if err != nil {
		t.Fatalf("token codec: %v", err)
	}

	quoteStore := quotes.NewInMemory()
	if err := quotes.Seed(context.Background(), quoteStore); err != nil {
		t.Fatalf("seed quotations: %v", err)
	}

	poStore, err := purchasing.Open(filepath.Join(t.TempDir(), "purchasing.db"))
	if err != nil {
		t.Fatalf("open purchasing store: %v", err)
	}
	t.Cleanup(func() { _ = poStore.Close() })

	api := New(Deps{
		Logger:     zerolog.Nop(),
		Sessions:   session.NewInMemory(),
		Verifier:   auth.DefaultCredentials(),
		Tokens:     codec,
		CRM:        crm.New(trackerURL),
		Quotes:     quoteStore,
		Purchasing: poStore,
		Exporter:   docgen.NewExporter(docgen.NewRasterizer()),
		Version:    "test",
		RateBurst:  100,
		RatePerSec: 100,
	})

	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := srv.Client()
	client.Jar = jar
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &apiClient{
		baseURL: srv.URL,
		client:  client,
		t:       t,
	}
}

func (c *apiClient) post(path string, body any, headers map[string]string) *http.Response {
	c.t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("do request: %v", err)
	}
	return resp
}

func (c *apiClient) get(path string, params url.Values) *http.Response {
	c.t.Helper()
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		c.t.Fatalf("parse url: %v", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("get request: %v", err)
	}
	return resp
}

// login signs in with the built-in credentials for the role and keeps
// the session cookie on the client.
func (c *apiClient) login(role string) {
	c.t.Helper()
	resp := c.post("/login", map[string]any{
		"role":     role,
		"username": role,
		"password": role + "@1234",
	}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.t.Fatalf("login as %s: unexpected status %d", role, resp.StatusCode)
	}
}

func decode[T any](t *testing.T, r *http.Response) T {
	t.Helper()
	defer r.Body.Close()
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestLoginSetsSessionAndLanding(t *testing.T) {
	api := newTestAPI(t, "")

	resp := api.post("/login", map[string]any{
		"role":     "law",
		"username": "law",
		"password": "law@1234",
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["landing"] != "/law/dashboard" {
		t.Fatalf("unexpected landing: %v", body["landing"])
	}

	resp = api.get("/law/dashboard", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard after login: %d", resp.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	api := newTestAPI(t, "")

	resp := api.post("/login", map[string]any{
		"role":     "law",
		"username": "law",
		"password": "wrong",
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["error"] != "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}

func TestProtectedRoutesRedirectWithoutSession(t *testing.T) {
	api := newTestAPI(t, "")

	for _, path := range []string{"/law/dashboard", "/po/dashboard", "/tracker/dashboard"} {
		resp := api.get(path, nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("%s: expected redirect, got %d", path, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/login" {
			t.Fatalf("%s: unexpected location %q", path, loc)
		}
	}
}

func TestRoleGateRejectsWrongRole(t *testing.T) {
	api := newTestAPI(t, "")
	api.login("po")

	resp := api.get("/law/dashboard", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect for wrong role, got %d", resp.StatusCode)
	}

	resp = api.get("/po/dashboard", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("own dashboard: %d", resp.StatusCode)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	api := newTestAPI(t, "")
	api.login("tracker")

	resp := api.post("/logout", nil, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: %d", resp.StatusCode)
	}

	resp = api.get("/tracker/dashboard", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect after logout, got %d", resp.StatusCode)
	}
}

func TestQuotationListAndInfo(t *testing.T) {
	api := newTestAPI(t, "")
	api.login("law")

	resp := api.get("/law/quotations", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: %d", resp.StatusCode)
	}
	list := decode[struct {
		Quotations []quotationView `json:"quotations"`
	}](t, resp)
	if len(list.Quotations) == 0 {
		t.Fatalf("expected seeded quotations")
	}

	first := list.Quotations[0]
	resp = api.get("/law/quotations/"+first.Number, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("info: %d", resp.StatusCode)
	}
	got := decode[quotationView](t, resp)
	if got.Number != first.Number {
		t.Fatalf("unexpected quotation %q", got.Number)
	}
	if got.Total != float64(got.Quantity)*got.UnitPrice {
		t.Fatalf("total mismatch: %v", got)
	}

	resp = api.get("/law/quotations/QT-missing", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing quotation: %d", resp.StatusCode)
	}
}

func TestPurchaseRequestLifecycle(t *testing.T) {
	api := newTestAPI(t, "")
	api.login("po")

	resp := api.post("/po/requests", map[string]any{
		"requester":      "สมชาย",
		"department":     "จัดซื้อ",
		"item":           "โน้ตบุ๊ก",
		"quantity":       3,
		"estimatedPrice": 32000,
		"neededBy":       "2026-10-01",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d", resp.StatusCode)
	}
	created := decode[purchasing.PurchaseRequest](t, resp)
	if created.Number == "" || created.Status != "draft" {
		t.Fatalf("unexpected record: %+v", created)
	}

	resp = api.get("/po/requests/"+created.Number, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("info: %d", resp.StatusCode)
	}
	got := decode[purchasing.PurchaseRequest](t, resp)
	if got.Item != "โน้ตบุ๊ก" || got.Quantity != 3 {
		t.Fatalf("unexpected record: %+v", got)
	}

	resp = api.get("/po/dashboard", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard: %d", resp.StatusCode)
	}
	dash := decode[map[string]any](t, resp)
	if dash["total"].(float64) != 1 {
		t.Fatalf("unexpected dashboard: %v", dash)
	}
}

func TestPurchaseRequestValidation(t *testing.T) {
	api := newTestAPI(t, "")
	api.login("po")

	cases := []map[string]any{
		{"requester": "", "item": "x", "quantity": 1},
		{"requester": "a", "item": "", "quantity": 1},
		{"requester": "a", "item": "x", "quantity": 0},
		{"requester": "a", "item": "x", "quantity": 1, "neededBy": "01/10/2026"},
	}
	for i, payload := range cases {
		resp := api.post("/po/requests", payload, nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d", i, resp.StatusCode)
		}
	}
}

func TestHealthAndReady(t *testing.T) {
	api := newTestAPI(t, "")

	resp := api.get("/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", body)
	}

	resp = api.get("/readyz", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz: %d", resp.StatusCode)
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	api := newTestAPI(t, "")

	resp := api.get("/no/such/view", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["error"] != "not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}
