package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sngm3741/park-finder/api/internal/config"
	"github.com/sngm3741/park-finder/api/internal/metrics"
)

func newTestServer(t *testing.T, cfg config.Config, store Store) *httptest.Server {
	t.Helper()
	srv := New(cfg, zerolog.Nop(), store, metrics.BuildInfo{Version: "test"})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.StoreDriver = config.StoreMemory
	return cfg
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testConfig(), MemoryStore())

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field=%q", body["status"])
	}
}

func TestHealthzDegraded(t *testing.T) {
	store := MemoryStore()
	store.Ping = func(context.Context) error { return errors.New("no primary") }
	ts := newTestServer(t, testConfig(), store)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d want 503", resp.StatusCode)
	}
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body["status"] != "degraded" || body["error"] != "no primary" {
		t.Fatalf("body=%v", body)
	}
}

func TestRoutesThroughMiddlewareChain(t *testing.T) {
	ts := newTestServer(t, testConfig(), MemoryStore())

	resp, err := http.Post(ts.URL+"/api/parks/", "application/json", strings.NewReader(`{"name":"Sefton Park"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d want 201", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/api/parks/park_1/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("trailing slash status=%d want 200", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("CORS headers must only be set for cross-origin requests")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, testConfig(), MemoryStore())

	if resp, err := http.Get(ts.URL + "/api/reviews"); err == nil {
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want 200", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	body := string(b)
	if !strings.Contains(body, `http_requests_total{method="GET",route="/api/reviews/",status="200"} 1`) &&
		!strings.Contains(body, `http_requests_total{method="GET",route="/api/reviews",status="200"} 1`) {
		t.Fatalf("request counter missing:\n%s", body)
	}
	if !strings.Contains(body, `park_finder_build_info{revision="",version="test"} 1`) {
		t.Fatalf("build info missing:\n%s", body)
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	ts := newTestServer(t, cfg, MemoryStore())

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d want 404", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	cfg := testConfig()
	cfg.AllowedOrigins = "https://parks.example.com"
	ts := newTestServer(t, cfg, MemoryStore())

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/parks/park_1", nil)
	req.Header.Set("Origin", "https://parks.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status=%d want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://parks.example.com" {
		t.Fatalf("allow-origin=%q", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "DELETE") || !strings.Contains(got, "PATCH") {
		t.Fatalf("allow-methods=%q", got)
	}

	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/api/reviews", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("allow-origin=%q want none", got)
	}
}

func TestShutdownClosesStore(t *testing.T) {
	closed := make(chan struct{})
	store := MemoryStore()
	store.Close = func(context.Context) error {
		close(closed)
		return nil
	}
	srv := New(testConfig(), zerolog.Nop(), store, metrics.BuildInfo{})

	errChan := make(chan error, 1)
	errChan <- http.ErrServerClosed
	if err := srv.waitForShutdown(&http.Server{}, errChan); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("store was not closed")
	}
}

func TestListenerFailureIsReturned(t *testing.T) {
	srv := New(testConfig(), zerolog.Nop(), MemoryStore(), metrics.BuildInfo{})

	errChan := make(chan error, 1)
	errChan <- errors.New("address already in use")
	if err := srv.waitForShutdown(&http.Server{}, errChan); err == nil {
		t.Fatal("expected listener error")
	}
}
