package proxy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestProxyPreservesPath(t *testing.T) {
	var gotPath, gotQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"projects":[]}`))
	}))
	defer backend.Close()

	target, err := url.Parse(backend.URL)
	if err != nil {
		t.Fatalf("parsing backend url: %v", err)
	}

	p := New(target)
	req := httptest.NewRequest("GET", "/api/projects?category=2", nil)
	rr := httptest.NewRecorder()
	p.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	if gotPath != "/api/projects" {
		t.Errorf("backend saw path %q, want /api/projects", gotPath)
	}
	if gotQuery != "category=2" {
		t.Errorf("backend saw query %q, want category=2", gotQuery)
	}
}

func TestProxySetsForwardedHeaders(t *testing.T) {
	var gotForwardedHost string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotForwardedHost = r.Header.Get("X-Forwarded-Host")
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	target, _ := url.Parse(backend.URL)

	p := New(target)
	req := httptest.NewRequest("GET", "http://gateway.example.com/api/orders", nil)
	rr := httptest.NewRecorder()
	p.ServeHTTP(rr, req)

	if gotForwardedHost != "gateway.example.com" {
		t.Errorf("X-Forwarded-Host = %q, want gateway.example.com", gotForwardedHost)
	}
}

func TestProxyBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // guaranteed refused connection

	target, _ := url.Parse(backend.URL)

	p := New(target)
	req := httptest.NewRequest("GET", "/api/projects", nil)
	rr := httptest.NewRecorder()
	p.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want 502", rr.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Message == "" {
		t.Error("error response has no message")
	}
}
