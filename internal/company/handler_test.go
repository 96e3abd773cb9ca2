package company_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/company"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
)

func TestHandler_DeleteType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"deleted", nil, http.StatusOK},
		{"in use", company.ErrTypeInUse, http.StatusConflict},
		{"missing", company.ErrTypeNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &company.StubRepo{
				DeleteTypeFunc: func(context.Context, int64) error { return tt.err },
			}
			h := company.NewHandler(company.NewService(company.Deps{Repo: repo}))

			req := httptest.NewRequest(http.MethodDelete, "/api/companies/types/1", http.NoBody)
			req.SetPathValue("id", "1")
			rec := httptest.NewRecorder()
			h.DeleteType(rec, req)

			if rec.Code != tt.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.code)
			}
		})
	}
}

func TestHandler_CreateTypeDuplicate(t *testing.T) {
	t.Parallel()

	repo := &company.StubRepo{
		CreateTypeFunc: func(_ context.Context, ct company.Type) (company.Type, error) {
			return ct, company.ErrDuplicateType
		},
	}
	h := company.NewHandler(company.NewService(company.Deps{Repo: repo}))

	ctx := web.NewContextWithParams(context.Background(), company.TypeRequest{Name: "Charity"})
	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/companies/types", http.NoBody)
	rec := httptest.NewRecorder()
	h.CreateType(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusConflict)
	}
}

func TestHandler_GetMissing(t *testing.T) {
	t.Parallel()

	repo := &company.StubRepo{
		FindFunc: func(context.Context, int64) (company.Company, error) {
			return company.Company{}, company.ErrNotFound
		},
	}
	h := company.NewHandler(company.NewService(company.Deps{Repo: repo}))

	req := httptest.NewRequest(http.MethodGet, "/api/companies/9", http.NoBody)
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusNotFound)
	}
}
