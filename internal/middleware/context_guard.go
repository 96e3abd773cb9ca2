package middleware

import (
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
)

// ContextGuard stops requests whose context already ended before routing.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.Fail(w, http.StatusRequestTimeout, err, "Request cancelled or timed out.", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
