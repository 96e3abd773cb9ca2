package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/middleware"
)

func TestMiddleware_RateLimit(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := middleware.RateLimit(0.001, 2)(handler)

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", http.NoBody)
		req.RemoteAddr = ip + ":4321"
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		return rec.Code
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i, wantCode := range want {
		if got := send("10.0.0.1"); got != wantCode {
			t.Errorf("request %d: rec.Code = %d, want: %d", i+1, got, wantCode)
		}
	}

	if got := send("10.0.0.2"); got != http.StatusOK {
		t.Errorf("other client: rec.Code = %d, want: %d", got, http.StatusOK)
	}
}

func TestMiddleware_RateLimitIgnoresForwardingHeaders(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	mw := middleware.RateLimit(0.001, 1)(handler)

	spoofed := []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"}
	for i, ip := range spoofed {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", http.NoBody)
		req.Header.Set("X-Forwarded-For", ip)
		req.Header.Set("X-Real-IP", ip)
		req.RemoteAddr = "10.0.0.1:1000"
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)

		wantCode := http.StatusTooManyRequests
		if i == 0 {
			wantCode = http.StatusOK
		}
		if rec.Code != wantCode {
			t.Errorf("request %d from %s: rec.Code = %d, want: %d", i+1, ip, rec.Code, wantCode)
		}
	}
}
