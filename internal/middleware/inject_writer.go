package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
)

const HeaderRequestID = "X-Request-ID"

// InjectWriter wraps the response writer in a SafeResponseWriter and assigns
// a request id, reusing the caller's X-Request-ID when it is a valid uuid.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, reqID)

		ctx := web.NewContextWithRequestID(r.Context(), reqID)
		writer := NewSafeResponseWriter(ctx, w)
		next.ServeHTTP(writer, r.WithContext(ctx))
	})
}
