package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/health"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
)

func TestActive(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/active", http.NoBody)
	rec := httptest.NewRecorder()

	health.Active(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf(message.FmtErrStatusCode, rec.Code, http.StatusOK)
	}

	var res web.OKResponse[struct{}]
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Message != "API is active" {
		t.Errorf("res.Message = %q, want: %q", res.Message, "API is active")
	}
}
