package employee

import (
	"context"
	"errors"

	"github.com/peaceoutommy/DMA-API/internal/role"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

type StubRepo struct {
	CreateFunc        func(ctx context.Context, userID, companyID, roleID int64) error
	FindFunc          func(ctx context.Context, userID int64) (Member, error)
	ListFunc          func(ctx context.Context, companyID int64) ([]Member, error)
	CountWithRoleFunc func(ctx context.Context, roleID int64) (int, error)
	DeleteFunc        func(ctx context.Context, userID, companyID int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, userID, companyID, roleID int64) error {
	if r.CreateFunc == nil {
		return errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, userID, companyID, roleID)
}

func (r *StubRepo) Find(ctx context.Context, userID int64) (Member, error) {
	if r.FindFunc == nil {
		return Member{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) List(ctx context.Context, companyID int64) ([]Member, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, companyID)
}

func (r *StubRepo) CountWithRole(ctx context.Context, roleID int64) (int, error) {
	if r.CountWithRoleFunc == nil {
		return 0, errors.New("CountWithRole() not implemented by stub")
	}
	return r.CountWithRoleFunc(ctx, roleID)
}

func (r *StubRepo) Delete(ctx context.Context, userID, companyID int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, userID, companyID)
}

type StubUserService struct {
	FindFunc    func(ctx context.Context, id int64) (user.User, error)
	SetRoleFunc func(ctx context.Context, id int64, role string) error
}

var _ UserService = (*StubUserService)(nil)

func (s *StubUserService) Find(ctx context.Context, id int64) (user.User, error) {
	if s.FindFunc == nil {
		return user.User{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubUserService) SetRole(ctx context.Context, id int64, r string) error {
	if s.SetRoleFunc == nil {
		return errors.New("SetRole() not implemented by stub")
	}
	return s.SetRoleFunc(ctx, id, r)
}

type StubRoleFinder struct {
	FindRoleFunc func(ctx context.Context, id int64) (role.Role, error)
}

var _ RoleFinder = (*StubRoleFinder)(nil)

func (s *StubRoleFinder) FindRole(ctx context.Context, id int64) (role.Role, error) {
	if s.FindRoleFunc == nil {
		return role.Role{}, errors.New("FindRole() not implemented by stub")
	}
	return s.FindRoleFunc(ctx, id)
}
