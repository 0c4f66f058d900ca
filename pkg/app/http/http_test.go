package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/config"
)

func TestHandleError_ServiceError(t *testing.T) {
	h := HandleError(func(w http.ResponseWriter, r *http.Request) error {
		return apperrors.BadRequestError(errors.New("boom"), "Wallet already in use")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Wallet already in use" || body.Code != http.StatusBadRequest {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestHandleError_UnknownError(t *testing.T) {
	h := HandleError(func(w http.ResponseWriter, r *http.Request) error {
		return fmt.Errorf("db exploded")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unexpected Service Error") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	var v map[string]any
	err := DecodeJSON(req, &v)
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error, got %v", err)
	}
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	l := NewRateLimiter(config.RateLimit{Requests: 1, Window: time.Hour, Burst: 2, TTL: time.Hour})
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	if !l.Allow("1.2.3.4") || !l.Allow("1.2.3.4") {
		t.Fatal("expected burst of two to be allowed")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("expected third request to be limited")
	}
	if !l.Allow("5.6.7.8") {
		t.Fatal("expected a different key to be allowed")
	}
}

func TestRateLimiter_ExpiresIdleVisitors(t *testing.T) {
	l := NewRateLimiter(config.RateLimit{Requests: 1, Window: time.Hour, Burst: 1, TTL: time.Minute})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(2 * time.Minute)
	l.Allow("b")

	if _, ok := l.visitors["a"]; ok {
		t.Fatal("expected idle visitor to be collected")
	}
}

func TestRateLimiter_SweepsOncePerTTL(t *testing.T) {
	l := NewRateLimiter(config.RateLimit{Requests: 1, Window: time.Hour, Burst: 1, TTL: time.Minute})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	l.now = func() time.Time { return now }

	l.Allow("a")
	l.visitors["idle"] = &visitor{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: start.Add(-time.Hour)}

	now = start.Add(30 * time.Second)
	l.Allow("b")
	if _, ok := l.visitors["idle"]; !ok {
		t.Fatal("expected no sweep before the ttl elapsed")
	}

	now = start.Add(61 * time.Second)
	l.Allow("c")
	if _, ok := l.visitors["idle"]; ok {
		t.Fatal("expected the idle visitor to be swept")
	}
	if _, ok := l.visitors["b"]; !ok {
		t.Fatal("expected the recent visitor to be kept")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	l := NewRateLimiter(config.RateLimit{Requests: 1, Window: time.Hour, Burst: 1, TTL: time.Hour})
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/", nil))

	if first.Code != http.StatusNoContent {
		t.Fatalf("expected first request through, got %d", first.Code)
	}
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, http.NotFoundHandler(), nil, &config.ServerConfig{ShutdownTimeout: time.Second})
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
