package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	handler := NewHandler(zap.NewNop(), mustConfig(t, "rateLimit:\n  requestsPerSecond: 0.01\n  burst: 2\n"), "test")

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, rr.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.RemoteAddr = "10.0.0.1:5678"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	other := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, other)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", rr.Code)
	}
}

func TestLimiterStoreRefillsAndSweeps(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := newLimiterStore(1, 1, time.Minute)
	store.now = func() time.Time { return now }

	if ok, _ := store.reserve("a"); !ok {
		t.Fatal("expected first request to pass")
	}
	ok, wait := store.reserve("a")
	if ok {
		t.Fatal("expected second request to be limited")
	}
	if wait <= 0 || wait > time.Second {
		t.Errorf("expected wait within one second, got %v", wait)
	}

	now = now.Add(time.Second)
	if ok, _ := store.reserve("a"); !ok {
		t.Fatal("expected request to pass after refill")
	}

	if ok, _ := store.reserve("b"); !ok {
		t.Fatal("expected new client to pass")
	}
	if store.size() != 2 {
		t.Fatalf("expected 2 tracked clients, got %d", store.size())
	}

	now = now.Add(2 * time.Minute)
	store.reserve("c")
	if store.size() != 1 {
		t.Errorf("expected idle clients to be swept, got %d entries", store.size())
	}
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		remote   string
		expected string
	}{
		{"192.168.1.5:4321", "192.168.1.5"},
		{"[::1]:80", "::1"},
		{"socket", "socket"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remote
		if got := clientKey(req); got != tt.expected {
			t.Errorf("clientKey(%q) = %q, expected %q", tt.remote, got, tt.expected)
		}
	}
}
