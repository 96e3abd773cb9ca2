package employee_test

import (
	"context"
	"errors"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/employee"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/role"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

func owner(companyID int64) *principal.Principal {
	return &principal.Principal{UserID: 1, Role: principal.RoleCompanyAccount, CompanyID: companyID}
}

func TestService_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		actor     *principal.Principal
		roleOwner int64
		userRole  string
		userErr   error
		createErr error
		wantErr   error
		wantRole  string
	}{
		{"added", owner(3), 3, principal.RoleDonor, nil, nil, nil, principal.RoleCompanyAccount},
		{"admin keeps role", owner(3), 3, principal.RoleAdmin, nil, nil, nil, ""},
		{"other company", owner(4), 3, principal.RoleDonor, nil, nil, employee.ErrForbidden, ""},
		{"role of another company", owner(3), 5, principal.RoleDonor, nil, nil, employee.ErrRoleMismatch, ""},
		{"unknown user", owner(3), 3, "", user.ErrNotFound, nil, user.ErrNotFound, ""},
		{"already member", owner(3), 3, principal.RoleDonor, nil, employee.ErrAlreadyMember, employee.ErrAlreadyMember, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotRole string
			users := &employee.StubUserService{
				FindFunc: func(_ context.Context, id int64) (user.User, error) {
					return user.User{ID: id, Role: tt.userRole}, tt.userErr
				},
				SetRoleFunc: func(_ context.Context, _ int64, r string) error {
					gotRole = r
					return nil
				},
			}
			roles := &employee.StubRoleFinder{
				FindRoleFunc: func(_ context.Context, id int64) (role.Role, error) {
					return role.Role{ID: id, CompanyID: tt.roleOwner, Name: role.NameEmployee}, nil
				},
			}
			repo := &employee.StubRepo{
				CreateFunc: func(context.Context, int64, int64, int64) error { return tt.createErr },
				FindFunc: func(_ context.Context, userID int64) (employee.Member, error) {
					return employee.Member{UserID: userID, CompanyID: 3}, nil
				},
			}

			svc := employee.NewService(repo, &db.StubTxManager{}, users, roles)
			_, err := svc.Add(context.Background(), tt.actor, employee.AddParams{UserID: 2, CompanyID: 3, RoleID: 7})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Add() = %v, want: %v", err, tt.wantErr)
			}
			if gotRole != tt.wantRole {
				t.Errorf("user role = %q, want: %q", gotRole, tt.wantRole)
			}
		})
	}
}

func TestService_Remove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		member   employee.Member
		owners   int
		userRole string
		wantErr  error
		wantRole string
	}{
		{"employee", employee.Member{UserID: 2, CompanyID: 3, RoleID: 8, RoleName: role.NameEmployee}, 1, principal.RoleCompanyAccount, nil, principal.RoleDonor},
		{"one of two owners", employee.Member{UserID: 2, CompanyID: 3, RoleID: 7, RoleName: role.NameOwner}, 2, principal.RoleCompanyAccount, nil, principal.RoleDonor},
		{"admin employee keeps role", employee.Member{UserID: 2, CompanyID: 3, RoleID: 8, RoleName: role.NameEmployee}, 1, principal.RoleAdmin, nil, ""},
		{"last owner", employee.Member{UserID: 2, CompanyID: 3, RoleID: 7, RoleName: role.NameOwner}, 1, principal.RoleCompanyAccount, employee.ErrLastOwner, ""},
		{"member elsewhere", employee.Member{UserID: 2, CompanyID: 9}, 0, principal.RoleCompanyAccount, employee.ErrNotMember, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotRole string
			users := &employee.StubUserService{
				FindFunc: func(_ context.Context, id int64) (user.User, error) {
					return user.User{ID: id, Role: tt.userRole}, nil
				},
				SetRoleFunc: func(_ context.Context, _ int64, r string) error {
					gotRole = r
					return nil
				},
			}
			repo := &employee.StubRepo{
				FindFunc:          func(context.Context, int64) (employee.Member, error) { return tt.member, nil },
				CountWithRoleFunc: func(context.Context, int64) (int, error) { return tt.owners, nil },
				DeleteFunc:        func(context.Context, int64, int64) error { return nil },
			}

			svc := employee.NewService(repo, &db.StubTxManager{}, users, &employee.StubRoleFinder{})
			err := svc.Remove(context.Background(), owner(3), employee.RemoveParams{EmployeeID: 2, CompanyID: 3})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Remove() = %v, want: %v", err, tt.wantErr)
			}
			if gotRole != tt.wantRole {
				t.Errorf("user role = %q, want: %q", gotRole, tt.wantRole)
			}
		})
	}
}

func TestService_IsMember(t *testing.T) {
	t.Parallel()

	repo := &employee.StubRepo{
		FindFunc: func(_ context.Context, userID int64) (employee.Member, error) {
			if userID == 1 {
				return employee.Member{UserID: 1}, nil
			}
			return employee.Member{}, employee.ErrNotMember
		},
	}
	svc := employee.NewService(repo, &db.StubTxManager{}, &employee.StubUserService{}, &employee.StubRoleFinder{})

	for id, want := range map[int64]bool{1: true, 2: false} {
		got, err := svc.IsMember(context.Background(), id)
		if err != nil {
			t.Fatalf("svc.IsMember(%d) = %v", id, err)
		}
		if got != want {
			t.Errorf("svc.IsMember(%d) = %v, want: %v", id, got, want)
		}
	}
}

func TestService_JoinKeepsAdminRole(t *testing.T) {
	t.Parallel()

	setRoleCalls := 0
	users := &employee.StubUserService{
		FindFunc: func(_ context.Context, id int64) (user.User, error) {
			return user.User{ID: id, Role: principal.RoleAdmin}, nil
		},
		SetRoleFunc: func(context.Context, int64, string) error {
			setRoleCalls++
			return nil
		},
	}
	repo := &employee.StubRepo{
		CreateFunc: func(context.Context, int64, int64, int64) error { return nil },
	}

	svc := employee.NewService(repo, &db.StubTxManager{}, users, &employee.StubRoleFinder{})
	if err := svc.Join(context.Background(), 9, 3, 1); err != nil {
		t.Fatalf("svc.Join() = %v", err)
	}
	if setRoleCalls != 0 {
		t.Errorf("SetRole calls = %d, want: 0", setRoleCalls)
	}
}
