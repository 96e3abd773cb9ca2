package role

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/principal"
)

var (
	ErrRoleNotFound        = errors.New("role: not found")
	ErrDuplicateRole       = errors.New("role: name already used in company")
	ErrRoleInUse           = errors.New("role: still held by members")
	ErrPermissionNotFound  = errors.New("role: permission not found")
	ErrDuplicatePermission = errors.New("role: permission name already exists")
	ErrCompanyNotFound     = errors.New("role: company not found")
	ErrForbidden           = errors.New("role: company belongs to another principal")
	ErrBlankName           = errors.New("role: name is blank")
)

type Repository interface {
	ListPermissions(ctx context.Context) ([]Permission, error)
	FindPermission(ctx context.Context, id int64) (Permission, error)
	CreatePermission(ctx context.Context, p Permission) (Permission, error)
	UpdatePermission(ctx context.Context, p Permission) error
	DeletePermission(ctx context.Context, id int64) error
	ListRoles(ctx context.Context, companyID int64) ([]Role, error)
	FindRole(ctx context.Context, id int64) (Role, error)
	CreateRole(ctx context.Context, companyID int64, name string) (int64, error)
	RenameRole(ctx context.Context, id int64, name string) error
	SetPermissions(ctx context.Context, roleID int64, permissionIDs []int64) error
	DeleteRole(ctx context.Context, id int64) error
}

type Service struct {
	repo  Repository
	txMgr db.TxManager
}

func NewService(repo Repository, txMgr db.TxManager) *Service {
	return &Service{repo: repo, txMgr: txMgr}
}

func (s *Service) ListPermissions(ctx context.Context) ([]Permission, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return perms, nil
}

func (s *Service) CreatePermission(ctx context.Context, p Permission) (Permission, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Permission{}, ErrBlankName
	}

	created, err := s.repo.CreatePermission(ctx, p)
	if err != nil {
		return Permission{}, fmt.Errorf("create permission: %w", err)
	}
	return created, nil
}

func (s *Service) UpdatePermission(ctx context.Context, p Permission) (Permission, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Permission{}, ErrBlankName
	}

	if _, err := s.repo.FindPermission(ctx, p.ID); err != nil {
		return Permission{}, fmt.Errorf("find permission %d: %w", p.ID, err)
	}

	if err := s.repo.UpdatePermission(ctx, p); err != nil {
		return Permission{}, fmt.Errorf("update permission %d: %w", p.ID, err)
	}
	return p, nil
}

func (s *Service) DeletePermission(ctx context.Context, id int64) error {
	if err := s.repo.DeletePermission(ctx, id); err != nil {
		return fmt.Errorf("delete permission %d: %w", id, err)
	}
	return nil
}

func (s *Service) FindRole(ctx context.Context, id int64) (Role, error) {
	r, err := s.repo.FindRole(ctx, id)
	if err != nil {
		return Role{}, fmt.Errorf("find role %d: %w", id, err)
	}
	return r, nil
}

func (s *Service) ListRoles(ctx context.Context, actor *principal.Principal, companyID int64) ([]Role, error) {
	if !actor.CanActFor(companyID) {
		return nil, ErrForbidden
	}

	roles, err := s.repo.ListRoles(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list roles of company %d: %w", companyID, err)
	}
	return roles, nil
}

type CreateParams struct {
	CompanyID     int64
	Name          string
	PermissionIDs []int64
}

func (s *Service) CreateRole(ctx context.Context, actor *principal.Principal, params CreateParams) (Role, error) {
	if !actor.CanActFor(params.CompanyID) {
		return Role{}, ErrForbidden
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return Role{}, ErrBlankName
	}

	slog.Info("Creating role...", "company_id", params.CompanyID, "name", name)
	var created Role
	err := s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		id, err := s.repo.CreateRole(ctx, params.CompanyID, name)
		if err != nil {
			return err
		}

		if err := s.repo.SetPermissions(ctx, id, params.PermissionIDs); err != nil {
			return err
		}

		created, err = s.repo.FindRole(ctx, id)
		return err
	})
	if err != nil {
		return Role{}, fmt.Errorf("create role %q: %w", name, err)
	}

	return created, nil
}

type UpdateParams struct {
	ID            int64
	Name          string
	PermissionIDs []int64
}

// UpdateRole replaces the name and the permission set of a role.
func (s *Service) UpdateRole(ctx context.Context, actor *principal.Principal, params UpdateParams) (Role, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return Role{}, ErrBlankName
	}

	var updated Role
	err := s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindRole(ctx, params.ID)
		if err != nil {
			return err
		}

		if !actor.CanActFor(existing.CompanyID) {
			return ErrForbidden
		}

		if err := s.repo.RenameRole(ctx, params.ID, name); err != nil {
			return err
		}

		if err := s.repo.SetPermissions(ctx, params.ID, params.PermissionIDs); err != nil {
			return err
		}

		updated, err = s.repo.FindRole(ctx, params.ID)
		return err
	})
	if err != nil {
		return Role{}, fmt.Errorf("update role %d: %w", params.ID, err)
	}

	return updated, nil
}

func (s *Service) DeleteRole(ctx context.Context, actor *principal.Principal, id int64) error {
	existing, err := s.repo.FindRole(ctx, id)
	if err != nil {
		return fmt.Errorf("find role %d: %w", id, err)
	}

	if !actor.CanActFor(existing.CompanyID) {
		return ErrForbidden
	}

	if err := s.repo.DeleteRole(ctx, id); err != nil {
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	return nil
}

// CreateDefaultRoles gives a new company an Owner role holding every
// permission and an Employee role holding none. It returns the Owner role.
func (s *Service) CreateDefaultRoles(ctx context.Context, companyID int64) (Role, error) {
	var owner Role
	err := s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		perms, err := s.repo.ListPermissions(ctx)
		if err != nil {
			return err
		}

		permIDs := make([]int64, 0, len(perms))
		for _, p := range perms {
			permIDs = append(permIDs, p.ID)
		}

		ownerID, err := s.repo.CreateRole(ctx, companyID, NameOwner)
		if err != nil {
			return err
		}
		if err := s.repo.SetPermissions(ctx, ownerID, permIDs); err != nil {
			return err
		}

		if _, err := s.repo.CreateRole(ctx, companyID, NameEmployee); err != nil {
			return err
		}

		owner = Role{ID: ownerID, CompanyID: companyID, Name: NameOwner, Permissions: perms}
		return nil
	})
	if err != nil {
		return Role{}, fmt.Errorf("create default roles of company %d: %w", companyID, err)
	}

	return owner, nil
}
