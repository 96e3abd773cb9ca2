package role

import (
	"context"
	"errors"
)

type StubRepo struct {
	ListPermissionsFunc  func(ctx context.Context) ([]Permission, error)
	FindPermissionFunc   func(ctx context.Context, id int64) (Permission, error)
	CreatePermissionFunc func(ctx context.Context, p Permission) (Permission, error)
	UpdatePermissionFunc func(ctx context.Context, p Permission) error
	DeletePermissionFunc func(ctx context.Context, id int64) error
	ListRolesFunc        func(ctx context.Context, companyID int64) ([]Role, error)
	FindRoleFunc         func(ctx context.Context, id int64) (Role, error)
	CreateRoleFunc       func(ctx context.Context, companyID int64, name string) (int64, error)
	RenameRoleFunc       func(ctx context.Context, id int64, name string) error
	SetPermissionsFunc   func(ctx context.Context, roleID int64, permissionIDs []int64) error
	DeleteRoleFunc       func(ctx context.Context, id int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) ListPermissions(ctx context.Context) ([]Permission, error) {
	if r.ListPermissionsFunc == nil {
		return nil, errors.New("ListPermissions() not implemented by stub")
	}
	return r.ListPermissionsFunc(ctx)
}

func (r *StubRepo) FindPermission(ctx context.Context, id int64) (Permission, error) {
	if r.FindPermissionFunc == nil {
		return Permission{}, errors.New("FindPermission() not implemented by stub")
	}
	return r.FindPermissionFunc(ctx, id)
}

func (r *StubRepo) CreatePermission(ctx context.Context, p Permission) (Permission, error) {
	if r.CreatePermissionFunc == nil {
		return Permission{}, errors.New("CreatePermission() not implemented by stub")
	}
	return r.CreatePermissionFunc(ctx, p)
}

func (r *StubRepo) UpdatePermission(ctx context.Context, p Permission) error {
	if r.UpdatePermissionFunc == nil {
		return errors.New("UpdatePermission() not implemented by stub")
	}
	return r.UpdatePermissionFunc(ctx, p)
}

func (r *StubRepo) DeletePermission(ctx context.Context, id int64) error {
	if r.DeletePermissionFunc == nil {
		return errors.New("DeletePermission() not implemented by stub")
	}
	return r.DeletePermissionFunc(ctx, id)
}

func (r *StubRepo) ListRoles(ctx context.Context, companyID int64) ([]Role, error) {
	if r.ListRolesFunc == nil {
		return nil, errors.New("ListRoles() not implemented by stub")
	}
	return r.ListRolesFunc(ctx, companyID)
}

func (r *StubRepo) FindRole(ctx context.Context, id int64) (Role, error) {
	if r.FindRoleFunc == nil {
		return Role{}, errors.New("FindRole() not implemented by stub")
	}
	return r.FindRoleFunc(ctx, id)
}

func (r *StubRepo) CreateRole(ctx context.Context, companyID int64, name string) (int64, error) {
	if r.CreateRoleFunc == nil {
		return 0, errors.New("CreateRole() not implemented by stub")
	}
	return r.CreateRoleFunc(ctx, companyID, name)
}

func (r *StubRepo) RenameRole(ctx context.Context, id int64, name string) error {
	if r.RenameRoleFunc == nil {
		return errors.New("RenameRole() not implemented by stub")
	}
	return r.RenameRoleFunc(ctx, id, name)
}

func (r *StubRepo) SetPermissions(ctx context.Context, roleID int64, permissionIDs []int64) error {
	if r.SetPermissionsFunc == nil {
		return errors.New("SetPermissions() not implemented by stub")
	}
	return r.SetPermissionsFunc(ctx, roleID, permissionIDs)
}

func (r *StubRepo) DeleteRole(ctx context.Context, id int64) error {
	if r.DeleteRoleFunc == nil {
		return errors.New("DeleteRole() not implemented by stub")
	}
	return r.DeleteRoleFunc(ctx, id)
}
