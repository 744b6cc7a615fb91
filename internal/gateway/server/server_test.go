package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prf-platform/prfweb/internal/gateway/config"
)

func testConfig(t *testing.T, backendURL string, staticDir string) *config.Config {
	t.Helper()
	return &config.Config{
		Environment:    "test",
		Host:           "127.0.0.1",
		Port:           3000,
		LogLevel:       "error",
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    5 * time.Second,
		APIBaseURL:     backendURL,
		StaticDir:      staticDir,
		RateLimitRPS:   0, // disabled so tests can hammer the router
		RateLimitBurst: 0,
		MaxRequestSize: 1 << 20,
	}
}

func newTestServer(t *testing.T, backendURL string, staticDir string) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	s, err := NewServer(testConfig(t, backendURL, staticDir), log, nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

// writeSPA lays out a minimal SPA build directory
func writeSPA(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644); err != nil {
		t.Fatalf("writing index.html: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatalf("creating assets dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatalf("writing app.js: %v", err)
	}
	return dir
}

func TestAPIRoutesProxied(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"projects":[]}`))
	}))
	defer backend.Close()

	s := newTestServer(t, backend.URL, writeSPA(t))

	req := httptest.NewRequest("GET", "/api/projects", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	if gotPath != "/api/projects" {
		t.Errorf("backend saw path %q, want /api/projects", gotPath)
	}
}

func TestSPAFallback(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	defer backend.Close()

	s := newTestServer(t, backend.URL, writeSPA(t))

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"root serves index", "/", http.StatusOK, "<html>app</html>"},
		{"client-side route falls back", "/admin/orders", http.StatusOK, "<html>app</html>"},
		{"existing asset served", "/assets/app.js", http.StatusOK, "console.log(1)"},
		{"missing asset 404s", "/assets/gone.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			rr := httptest.NewRecorder()
			s.Router().ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Errorf("got status %d, want %d", rr.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rr.Body.String() != tt.wantBody {
				t.Errorf("got body %q, want %q", rr.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	defer backend.Close()

	s := newTestServer(t, backend.URL, writeSPA(t))

	req := httptest.NewRequest("GET", "/health/live", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("got status %q, want ok", body["status"])
	}
}

func TestHealthReady(t *testing.T) {
	t.Run("backend up", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer backend.Close()

		s := newTestServer(t, backend.URL, writeSPA(t))

		req := httptest.NewRequest("GET", "/health/ready", nil)
		rr := httptest.NewRecorder()
		s.Router().ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("got status %d, want 200", rr.Code)
		}
	})

	t.Run("backend down", func(t *testing.T) {
		backend := httptest.NewServer(http.NotFoundHandler())
		backend.Close()

		s := newTestServer(t, backend.URL, writeSPA(t))

		req := httptest.NewRequest("GET", "/health/ready", nil)
		rr := httptest.NewRecorder()
		s.Router().ServeHTTP(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("got status %d, want 503", rr.Code)
		}
	})
}

func TestSecurityHeadersApplied(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	defer backend.Close()

	s := newTestServer(t, backend.URL, writeSPA(t))

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
}
