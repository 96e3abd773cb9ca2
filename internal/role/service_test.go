package role_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/role"
)

func owner(companyID int64) *principal.Principal {
	return &principal.Principal{UserID: 1, Role: principal.RoleCompanyAccount, CompanyID: companyID}
}

func TestService_CreateDefaultRoles(t *testing.T) {
	t.Parallel()

	perms := []role.Permission{{ID: 1, Name: role.PermAddEmployee}, {ID: 2, Name: role.PermCreateRole}}
	created := map[string]int64{}
	granted := map[int64][]int64{}
	nextID := int64(10)

	repo := &role.StubRepo{
		ListPermissionsFunc: func(context.Context) ([]role.Permission, error) { return perms, nil },
		CreateRoleFunc: func(_ context.Context, companyID int64, name string) (int64, error) {
			if companyID != 7 {
				t.Errorf("companyID = %d, want: 7", companyID)
			}
			nextID++
			created[name] = nextID
			return nextID, nil
		},
		SetPermissionsFunc: func(_ context.Context, roleID int64, ids []int64) error {
			granted[roleID] = ids
			return nil
		},
	}

	ownerRole, err := role.NewService(repo, &db.StubTxManager{}).CreateDefaultRoles(context.Background(), 7)
	if err != nil {
		t.Fatalf("svc.CreateDefaultRoles() = %v", err)
	}

	if ownerRole.Name != role.NameOwner || ownerRole.ID != created[role.NameOwner] {
		t.Errorf("owner = %+v, want id %d", ownerRole, created[role.NameOwner])
	}
	if _, ok := created[role.NameEmployee]; !ok {
		t.Error("Employee role was not created")
	}
	if got, want := granted[created[role.NameOwner]], []int64{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("owner permissions = %v, want: %v", got, want)
	}
	if _, ok := granted[created[role.NameEmployee]]; ok {
		t.Error("Employee role was granted permissions")
	}
}

func TestService_CreateRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actor   *principal.Principal
		params  role.CreateParams
		setErr  error
		wantErr error
	}{
		{"created", owner(3), role.CreateParams{CompanyID: 3, Name: " Manager ", PermissionIDs: []int64{1}}, nil, nil},
		{"other company", owner(4), role.CreateParams{CompanyID: 3, Name: "Manager"}, nil, role.ErrForbidden},
		{"blank name", owner(3), role.CreateParams{CompanyID: 3, Name: "  "}, nil, role.ErrBlankName},
		{"unknown permission", owner(3), role.CreateParams{CompanyID: 3, Name: "Manager", PermissionIDs: []int64{99}},
			role.ErrPermissionNotFound, role.ErrPermissionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotName string
			repo := &role.StubRepo{
				CreateRoleFunc: func(_ context.Context, _ int64, name string) (int64, error) {
					gotName = name
					return 5, nil
				},
				SetPermissionsFunc: func(context.Context, int64, []int64) error { return tt.setErr },
				FindRoleFunc: func(_ context.Context, id int64) (role.Role, error) {
					return role.Role{ID: id, CompanyID: 3, Name: gotName}, nil
				},
			}

			got, err := role.NewService(repo, &db.StubTxManager{}).CreateRole(context.Background(), tt.actor, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.CreateRole() = %v, want: %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && (got.ID != 5 || got.Name != "Manager") {
				t.Errorf("svc.CreateRole() = %+v", got)
			}
		})
	}
}

func TestService_UpdateRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actor   *principal.Principal
		findErr error
		wantErr error
	}{
		{"updated", owner(3), nil, nil},
		{"admin", &principal.Principal{Role: principal.RoleAdmin}, nil, nil},
		{"other company", owner(8), nil, role.ErrForbidden},
		{"missing", owner(3), role.ErrRoleNotFound, role.ErrRoleNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			renamed := false
			repo := &role.StubRepo{
				FindRoleFunc: func(_ context.Context, id int64) (role.Role, error) {
					return role.Role{ID: id, CompanyID: 3, Name: "Manager"}, tt.findErr
				},
				RenameRoleFunc: func(context.Context, int64, string) error {
					renamed = true
					return nil
				},
				SetPermissionsFunc: func(context.Context, int64, []int64) error { return nil },
			}

			_, err := role.NewService(repo, &db.StubTxManager{}).UpdateRole(context.Background(), tt.actor,
				role.UpdateParams{ID: 2, Name: "Lead", PermissionIDs: []int64{1, 2}})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.UpdateRole() = %v, want: %v", err, tt.wantErr)
			}
			if renamed != (tt.wantErr == nil) {
				t.Errorf("renamed = %v, want: %v", renamed, tt.wantErr == nil)
			}
		})
	}
}

func TestService_DeleteRoleInUse(t *testing.T) {
	t.Parallel()

	repo := &role.StubRepo{
		FindRoleFunc: func(_ context.Context, id int64) (role.Role, error) {
			return role.Role{ID: id, CompanyID: 3}, nil
		},
		DeleteRoleFunc: func(context.Context, int64) error { return role.ErrRoleInUse },
	}

	err := role.NewService(repo, &db.StubTxManager{}).DeleteRole(context.Background(), owner(3), 2)
	if !errors.Is(err, role.ErrRoleInUse) {
		t.Errorf("svc.DeleteRole() = %v, want: %v", err, role.ErrRoleInUse)
	}
}
