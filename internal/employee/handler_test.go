package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/employee"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

func TestHandler_Remove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		findErr error
		code    int
	}{
		{"not a member", employee.ErrNotMember, http.StatusNotFound},
		{"removed", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &employee.StubRepo{
				FindFunc: func(_ context.Context, userID int64) (employee.Member, error) {
					return employee.Member{UserID: userID, CompanyID: 3, RoleName: "Employee"}, tt.findErr
				},
				DeleteFunc: func(context.Context, int64, int64) error { return nil },
			}
			users := &employee.StubUserService{
				FindFunc: func(_ context.Context, id int64) (user.User, error) {
					return user.User{ID: id, Role: principal.RoleCompanyAccount}, nil
				},
				SetRoleFunc: func(context.Context, int64, string) error { return nil },
			}
			h := employee.NewHandler(employee.NewService(repo, &db.StubTxManager{}, users, &employee.StubRoleFinder{}))

			ctx := principal.NewContext(context.Background(), owner(3))
			ctx = web.NewContextWithParams(ctx, employee.RemoveRequest{EmployeeID: 2, CompanyID: 3})
			req := httptest.NewRequestWithContext(ctx, http.MethodDelete, "/api/companies/membership", http.NoBody)
			rec := httptest.NewRecorder()
			h.Remove(rec, req)

			if rec.Code != tt.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.code)
			}
		})
	}
}

func TestHandler_ListUnauthenticated(t *testing.T) {
	t.Parallel()

	h := employee.NewHandler(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/companies/membership/3/employees", http.NoBody)
	req.SetPathValue("companyId", "3")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusUnauthorized)
	}
}
