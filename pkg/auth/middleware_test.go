package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func testCfg() SecConfig {
	return SecConfig{
		AllowedOrigins: []string{"http://localhost:5173"},
		BackendKeys:    map[string]struct{}{"bk": {}},
		FrontendKeys:   map[string]struct{}{"fk": {}},
		AdminKeys:      map[string]struct{}{"ak": {}},
	}
}

func serve(t *testing.T, cfg SecConfig, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	Middleware(cfg)(okHandler()).ServeHTTP(w, req)
	return w
}

func TestMissingKeyRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox", nil)
	if w := serve(t, testCfg(), req); w.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d", w.Code)
	}
}

func TestAllowUnauth(t *testing.T) {
	cfg := testCfg()
	cfg.AllowUnauth = true
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox", nil)
	w := serve(t, cfg, req)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if got := req.Header.Get("X-Role-Name"); got != "unauth" {
		t.Fatalf("role = %q", got)
	}
}

func TestAPIKeyRoles(t *testing.T) {
	cases := []struct {
		key  string
		role string
	}{
		{"bk", "backend"},
		{"fk", "frontend"},
		{"ak", "admin"},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox", nil)
		req.Header.Set("X-API-Key", c.key)
		w := serve(t, testCfg(), req)
		if w.Code != http.StatusOK {
			t.Fatalf("key %s: code = %d", c.key, w.Code)
		}
		if got := req.Header.Get("X-Role-Name"); got != c.role {
			t.Fatalf("key %s: role = %q, want %q", c.key, got, c.role)
		}
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox", nil)
	req.Header.Set("Authorization", "Bearer bk")
	if w := serve(t, testCfg(), req); w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
}

func TestUnknownKeyRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox", nil)
	req.Header.Set("X-API-Key", "stolen")
	if w := serve(t, testCfg(), req); w.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d", w.Code)
	}
}

func TestHealthProbesBypassAuth(t *testing.T) {
	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if w := serve(t, testCfg(), req); w.Code != http.StatusOK {
			t.Fatalf("%s: code = %d", path, w.Code)
		}
	}
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/inbox", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(t, testCfg(), req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight code = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow-origin = %q", got)
	}

	// disallowed origin gets no CORS headers
	req = httptest.NewRequest(http.MethodOptions, "/api/v1/inbox", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(t, testCfg(), req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("allow-origin leaked: %q", got)
	}
}

func TestRateLimitPerKey(t *testing.T) {
	cfg := testCfg()
	cfg.RPS = 1
	cfg.Burst = 2
	mw := Middleware(cfg)(okHandler())

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox", nil)
		req.Header.Set("X-API-Key", "bk")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests rejected: %v", codes)
	}
	if codes[3] != http.StatusTooManyRequests {
		t.Fatalf("limit never hit: %v", codes)
	}

	// a different key has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inbox", nil)
	req.Header.Set("X-API-Key", "ak")
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("independent key limited: %d", w.Code)
	}
}
