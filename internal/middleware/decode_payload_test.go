package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/auth"
	"github.com/peaceoutommy/DMA-API/internal/funding"
	"github.com/peaceoutommy/DMA-API/internal/middleware"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/shopspring/decimal"
)

func TestDecodePayload_FundRequest(t *testing.T) {
	t.Parallel()

	const message = "Funds for the second well in the northern village."

	tests := []struct {
		name       string
		code       int
		payload    string
		bodySize   int64
		wantAmount string
	}{
		{"Amount as number", http.StatusOK, `{"campaign_id":7,"amount":250.75,"message":"` + message + `"}`, 256, "250.75"},
		{"Amount as string", http.StatusOK, `{"campaign_id":7,"amount":"1000","message":"` + message + `"}`, 256, "1000"},
		{"Payload too large", http.StatusRequestEntityTooLarge, `{"campaign_id":7,"amount":10,"message":"` + message + `"}`, 16, ""},
		{"Unknown field", http.StatusUnprocessableEntity, `{"campaign_id":7,"amount":10,"status":"APPROVED"}`, 256, ""},
		{"Second object", http.StatusBadRequest, `{"campaign_id":7,"amount":10}{"campaign_id":8,"amount":10}`, 256, ""},
		{"Amount is not a number", http.StatusBadRequest, `{"campaign_id":7,"amount":"ten"}`, 256, ""},
		{"Campaign id as string", http.StatusBadRequest, `{"campaign_id":"7","amount":10}`, 256, ""},
		{"Truncated", http.StatusBadRequest, `{"campaign_id":7,"amount"`, 256, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got *funding.CreateRequest
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				req, err := web.ParamsFromContext[funding.CreateRequest](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				got = &req
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/fund-requests", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[funding.CreateRequest](tt.bodySize)(handler).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}

			if tt.wantAmount == "" {
				if got != nil {
					t.Errorf("handler reached with %+v", *got)
				}
				return
			}
			if got == nil {
				t.Fatal("handler was not reached")
			}
			if got.CampaignID != 7 || got.Message != message || !got.Amount.Equal(decimal.RequireFromString(tt.wantAmount)) {
				t.Errorf("decoded = %+v, want campaign 7 with amount %s", *got, tt.wantAmount)
			}
		})
	}
}

func TestDecodePayload_LoginRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		payload      string
		code         int
		wantUsername string
		wantEmail    string
	}{
		{"Username login", `{"username":"maria","password":"s3cret!"}`, http.StatusOK, "maria", ""},
		{"Email login", `{"email":"maria@example.com","password":"s3cret!"}`, http.StatusOK, "", "maria@example.com"},
		{"Array as username", `{"username":["maria","jose"],"password":"s3cret!"}`, http.StatusBadRequest, "", ""},
		{"Unexpected role", `{"username":"maria","password":"s3cret!","role":"ADMIN"}`, http.StatusUnprocessableEntity, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				req, err := web.ParamsFromContext[auth.LoginRequest](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				if req.Username != tt.wantUsername || req.Email != tt.wantEmail || req.Password != "s3cret!" {
					t.Errorf("decoded = %+v", req)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[auth.LoginRequest](1024)(handler).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}
		})
	}
}
