package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/middleware"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
)

func TestMiddleware_CheckContentType(t *testing.T) {
	t.Parallel()

	const (
		defaultContent = "test"
		errContent     = `{"message":"Invalid input."}`
		body           = `{"name":"x"}`
	)

	var tests = []struct {
		name, method, contentType, body, wantBody string
		wantCode                                  int
	}{
		{"JSON post", http.MethodPost, web.MimeJSON, body, defaultContent, http.StatusOK},
		{"JSON put", http.MethodPut, web.MimeJSON, body, defaultContent, http.StatusOK},
		{"JSON patch", http.MethodPatch, web.MimeJSON, body, defaultContent, http.StatusOK},
		{"JSON with charset", http.MethodPost, "application/json; charset=utf-8", body, defaultContent, http.StatusOK},
		{"Multipart form", http.MethodPost, "multipart/form-data; boundary=xyz", body, defaultContent, http.StatusOK},
		{"Other Content-Type", http.MethodPost, "text/html; charset=utf-8", body, errContent, http.StatusUnsupportedMediaType},
		{"Empty Content-Type", http.MethodPost, "", body, errContent, http.StatusUnsupportedMediaType},
		{"Post without body", http.MethodPost, "", "", defaultContent, http.StatusOK},
		{"Get request", http.MethodGet, "", "", defaultContent, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, err := w.Write([]byte(defaultContent))
				if err != nil {
					const status = http.StatusInternalServerError
					http.Error(w, http.StatusText(status), status)
					return
				}
			})

			req, rec := httptest.NewRequest(tt.method, "/test", strings.NewReader(tt.body)), httptest.NewRecorder()
			if tt.contentType != "" {
				req.Header.Set(web.HeaderContentType, tt.contentType)
			}

			middleware.CheckContentType(handler).ServeHTTP(rec, req)

			wantCode, gotCode := tt.wantCode, rec.Code
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d\nwant: %d", gotCode, wantCode)
			}

			wantBody, gotBody := tt.wantBody, strings.TrimSuffix(rec.Body.String(), "\n")
			if gotBody != wantBody {
				t.Errorf("rec.Body.String() = %q\nwant: %q", gotBody, wantBody)
			}
		})
	}
}
