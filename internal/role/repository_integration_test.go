package role_test

import (
	"errors"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/role"
)

func TestIntegrationRepository(t *testing.T) {
	conn, ctx := db.Setup(t)
	repo := role.NewRepository(conn)

	perms, err := repo.ListPermissions(ctx)
	if err != nil {
		t.Fatalf("repo.ListPermissions() = %v", err)
	}
	if len(perms) < 9 {
		t.Fatalf("len(perms) = %d, want at least 9 seeded permissions", len(perms))
	}

	if _, err := repo.CreateRole(ctx, 99999999, "Ghost"); !errors.Is(err, role.ErrCompanyNotFound) {
		t.Errorf("repo.CreateRole() unknown company = %v, want: %v", err, role.ErrCompanyNotFound)
	}

	if _, err := repo.FindRole(ctx, 99999999); !errors.Is(err, role.ErrRoleNotFound) {
		t.Errorf("repo.FindRole() missing = %v, want: %v", err, role.ErrRoleNotFound)
	}

	created, err := repo.CreatePermission(ctx, role.Permission{
		Name: "Integration permission",
		Type: role.PermissionCampaign,
	})
	if err != nil {
		t.Fatalf("repo.CreatePermission() = %v", err)
	}

	if _, err := repo.CreatePermission(ctx, role.Permission{Name: created.Name, Type: role.PermissionCampaign}); !errors.Is(err, role.ErrDuplicatePermission) {
		t.Errorf("repo.CreatePermission() duplicate = %v, want: %v", err, role.ErrDuplicatePermission)
	}

	if err := repo.DeletePermission(ctx, created.ID); err != nil {
		t.Errorf("repo.DeletePermission() = %v", err)
	}
}
