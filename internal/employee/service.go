package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/role"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

var (
	ErrAlreadyMember    = errors.New("employee: user already belongs to a company")
	ErrNotMember        = errors.New("employee: user is not a member of the company")
	ErrMissingReference = errors.New("employee: user, company or role does not exist")
	ErrRoleMismatch     = errors.New("employee: role belongs to another company")
	ErrLastOwner        = errors.New("employee: cannot remove the last owner")
	ErrForbidden        = errors.New("employee: company belongs to another principal")
)

type Repository interface {
	Create(ctx context.Context, userID, companyID, roleID int64) error
	Find(ctx context.Context, userID int64) (Member, error)
	List(ctx context.Context, companyID int64) ([]Member, error)
	CountWithRole(ctx context.Context, roleID int64) (int, error)
	Delete(ctx context.Context, userID, companyID int64) error
}

type UserService interface {
	Find(ctx context.Context, id int64) (user.User, error)
	SetRole(ctx context.Context, id int64, role string) error
}

type RoleFinder interface {
	FindRole(ctx context.Context, id int64) (role.Role, error)
}

type AddParams struct {
	UserID    int64
	CompanyID int64
	RoleID    int64
}

type RemoveParams struct {
	EmployeeID int64
	CompanyID  int64
}

type Service struct {
	repo  Repository
	txMgr db.TxManager
	users UserService
	roles RoleFinder
}

func NewService(repo Repository, txMgr db.TxManager, users UserService, roles RoleFinder) *Service {
	return &Service{repo: repo, txMgr: txMgr, users: users, roles: roles}
}

// Join makes the user a member of the company and promotes them to
// COMPANY_ACCOUNT. Admins keep their global role.
func (s *Service) Join(ctx context.Context, userID, companyID, roleID int64) error {
	err := s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, userID, companyID, roleID); err != nil {
			return err
		}
		return s.setRole(ctx, userID, principal.RoleCompanyAccount)
	})
	if err != nil {
		return fmt.Errorf("join user %d to company %d: %w", userID, companyID, err)
	}
	return nil
}

// IsMember reports whether the user belongs to any company.
func (s *Service) IsMember(ctx context.Context, userID int64) (bool, error) {
	_, err := s.repo.Find(ctx, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotMember) {
		return false, nil
	}
	return false, fmt.Errorf("find membership of user %d: %w", userID, err)
}

func (s *Service) List(ctx context.Context, actor *principal.Principal, companyID int64) ([]Member, error) {
	if !actor.CanActFor(companyID) {
		return nil, ErrForbidden
	}

	members, err := s.repo.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list members of company %d: %w", companyID, err)
	}
	return members, nil
}

func (s *Service) Add(ctx context.Context, actor *principal.Principal, params AddParams) (Member, error) {
	if !actor.CanActFor(params.CompanyID) {
		return Member{}, ErrForbidden
	}

	slog.Info("Adding employee...", "user_id", params.UserID, "company_id", params.CompanyID)
	var added Member
	err := s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.Find(ctx, params.UserID); err != nil {
			return err
		}

		r, err := s.roles.FindRole(ctx, params.RoleID)
		if err != nil {
			return err
		}
		if r.CompanyID != params.CompanyID {
			return ErrRoleMismatch
		}

		if err := s.Join(ctx, params.UserID, params.CompanyID, params.RoleID); err != nil {
			return err
		}

		added, err = s.repo.Find(ctx, params.UserID)
		return err
	})
	if err != nil {
		return Member{}, fmt.Errorf("add employee %d: %w", params.UserID, err)
	}

	return added, nil
}

// Remove ends a membership and returns the user to DONOR unless they are an
// admin. A company always keeps at least one Owner.
func (s *Service) Remove(ctx context.Context, actor *principal.Principal, params RemoveParams) error {
	if !actor.CanActFor(params.CompanyID) {
		return ErrForbidden
	}

	slog.Info("Removing employee...", "user_id", params.EmployeeID, "company_id", params.CompanyID)
	err := s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		m, err := s.repo.Find(ctx, params.EmployeeID)
		if err != nil {
			return err
		}
		if m.CompanyID != params.CompanyID {
			return ErrNotMember
		}

		if m.RoleName == role.NameOwner {
			owners, err := s.repo.CountWithRole(ctx, m.RoleID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		if err := s.repo.Delete(ctx, params.EmployeeID, params.CompanyID); err != nil {
			return err
		}
		return s.setRole(ctx, params.EmployeeID, principal.RoleDonor)
	})
	if err != nil {
		return fmt.Errorf("remove employee %d: %w", params.EmployeeID, err)
	}
	return nil
}

// setRole changes the global role of a user that is not an ADMIN.
func (s *Service) setRole(ctx context.Context, userID int64, newRole string) error {
	u, err := s.users.Find(ctx, userID)
	if err != nil {
		return err
	}
	if u.Role == principal.RoleAdmin {
		slog.Info("User is an admin, keeping global role.", "user_id", userID)
		return nil
	}
	return s.users.SetRole(ctx, userID, newRole)
}
