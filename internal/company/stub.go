package company

import (
	"context"
	"errors"

	"github.com/peaceoutommy/DMA-API/internal/role"
)

type StubRepo struct {
	ListFunc         func(ctx context.Context) ([]Company, error)
	FindFunc         func(ctx context.Context, id int64) (Company, error)
	CreateFunc       func(ctx context.Context, params CreateParams) (int64, error)
	UpdateStatusFunc func(ctx context.Context, id int64, status Status) error
	ListTypesFunc    func(ctx context.Context) ([]Type, error)
	FindTypeFunc     func(ctx context.Context, id int64) (Type, error)
	CreateTypeFunc   func(ctx context.Context, t Type) (Type, error)
	UpdateTypeFunc   func(ctx context.Context, t Type) error
	DeleteTypeFunc   func(ctx context.Context, id int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context) ([]Company, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (Company, error) {
	if r.FindFunc == nil {
		return Company{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (int64, error) {
	if r.CreateFunc == nil {
		return 0, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) UpdateStatus(ctx context.Context, id int64, status Status) error {
	if r.UpdateStatusFunc == nil {
		return errors.New("UpdateStatus() not implemented by stub")
	}
	return r.UpdateStatusFunc(ctx, id, status)
}

func (r *StubRepo) ListTypes(ctx context.Context) ([]Type, error) {
	if r.ListTypesFunc == nil {
		return nil, errors.New("ListTypes() not implemented by stub")
	}
	return r.ListTypesFunc(ctx)
}

func (r *StubRepo) FindType(ctx context.Context, id int64) (Type, error) {
	if r.FindTypeFunc == nil {
		return Type{}, errors.New("FindType() not implemented by stub")
	}
	return r.FindTypeFunc(ctx, id)
}

func (r *StubRepo) CreateType(ctx context.Context, t Type) (Type, error) {
	if r.CreateTypeFunc == nil {
		return Type{}, errors.New("CreateType() not implemented by stub")
	}
	return r.CreateTypeFunc(ctx, t)
}

func (r *StubRepo) UpdateType(ctx context.Context, t Type) error {
	if r.UpdateTypeFunc == nil {
		return errors.New("UpdateType() not implemented by stub")
	}
	return r.UpdateTypeFunc(ctx, t)
}

func (r *StubRepo) DeleteType(ctx context.Context, id int64) error {
	if r.DeleteTypeFunc == nil {
		return errors.New("DeleteType() not implemented by stub")
	}
	return r.DeleteTypeFunc(ctx, id)
}

type StubRoleCreator struct {
	CreateDefaultRolesFunc func(ctx context.Context, companyID int64) (role.Role, error)
}

var _ RoleCreator = (*StubRoleCreator)(nil)

func (s *StubRoleCreator) CreateDefaultRoles(ctx context.Context, companyID int64) (role.Role, error) {
	if s.CreateDefaultRolesFunc == nil {
		return role.Role{}, errors.New("CreateDefaultRoles() not implemented by stub")
	}
	return s.CreateDefaultRolesFunc(ctx, companyID)
}

type StubMembership struct {
	IsMemberFunc func(ctx context.Context, userID int64) (bool, error)
	JoinFunc     func(ctx context.Context, userID, companyID, roleID int64) error
}

var _ Membership = (*StubMembership)(nil)

func (s *StubMembership) IsMember(ctx context.Context, userID int64) (bool, error) {
	if s.IsMemberFunc == nil {
		return false, errors.New("IsMember() not implemented by stub")
	}
	return s.IsMemberFunc(ctx, userID)
}

func (s *StubMembership) Join(ctx context.Context, userID, companyID, roleID int64) error {
	if s.JoinFunc == nil {
		return errors.New("Join() not implemented by stub")
	}
	return s.JoinFunc(ctx, userID, companyID, roleID)
}
