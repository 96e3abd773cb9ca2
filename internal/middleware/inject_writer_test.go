package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/peaceoutommy/DMA-API/internal/middleware"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
)

func TestInjectWriter(t *testing.T) {
	t.Parallel()

	const existing = "5b1f0c7e-8d4a-4c2b-9a51-3e2f1d0c9b8a"

	tests := []struct {
		name, incoming string
		keep           bool
	}{
		{"Generates id", "", false},
		{"Keeps valid id", existing, true},
		{"Replaces invalid id", "not-a-uuid", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var ctxID string
			var wrapped bool
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = web.RequestIDFromContext(r.Context())
				_, wrapped = w.(*middleware.SafeResponseWriter)
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.incoming != "" {
				req.Header.Set(middleware.HeaderRequestID, tc.incoming)
			}
			rec := httptest.NewRecorder()
			middleware.InjectWriter(handler).ServeHTTP(rec, req)

			if !wrapped {
				t.Error("handler writer is not a *SafeResponseWriter")
			}

			if rec.Code != http.StatusCreated {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusCreated)
			}

			gotID := rec.Header().Get(middleware.HeaderRequestID)
			if gotID != ctxID {
				t.Errorf("header id = %q, want: %q", gotID, ctxID)
			}
			if _, err := uuid.Parse(gotID); err != nil {
				t.Errorf("uuid.Parse(%q) = %v", gotID, err)
			}
			if tc.keep && gotID != tc.incoming {
				t.Errorf("request id = %q, want: %q", gotID, tc.incoming)
			}
		})
	}
}

func TestSafeResponseWriter_RecordsStatusAndBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	w := middleware.NewSafeResponseWriter(req.Context(), rec)

	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("w.Write() = %v", err)
	}
	w.WriteHeader(http.StatusTeapot)

	if got := w.Status(); got != http.StatusOK {
		t.Errorf("w.Status() = %d, want: %d", got, http.StatusOK)
	}
	if got := w.BytesWritten(); got != 5 {
		t.Errorf("w.BytesWritten() = %d, want: %d", got, 5)
	}
}
