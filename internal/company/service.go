package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/platform/media"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/role"
	"github.com/peaceoutommy/DMA-API/internal/ticket"
)

var (
	ErrNotFound      = errors.New("company: not found")
	ErrDuplicate     = errors.New("company: name, registration number or tax id already registered")
	ErrAlreadyMember = errors.New("company: user already belongs to a company")
	ErrTypeNotFound  = errors.New("company: type not found")
	ErrDuplicateType = errors.New("company: type name already exists")
	ErrTypeInUse     = errors.New("company: type is used by companies")
	ErrBlankName     = errors.New("company: name is blank")
)

type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Find(ctx context.Context, id int64) (Company, error)
	Create(ctx context.Context, params CreateParams) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	ListTypes(ctx context.Context) ([]Type, error)
	FindType(ctx context.Context, id int64) (Type, error)
	CreateType(ctx context.Context, t Type) (Type, error)
	UpdateType(ctx context.Context, t Type) error
	DeleteType(ctx context.Context, id int64) error
}

type RoleCreator interface {
	CreateDefaultRoles(ctx context.Context, companyID int64) (role.Role, error)
}

type Membership interface {
	IsMember(ctx context.Context, userID int64) (bool, error)
	Join(ctx context.Context, userID, companyID, roleID int64) error
}

type TicketOpener interface {
	Open(ctx context.Context, params ticket.OpenParams) (ticket.Ticket, error)
}

type CreateParams struct {
	Name               string
	RegistrationNumber string
	TaxID              string
	TypeID             int64
}

type Deps struct {
	Repo    Repository
	TxMgr   db.TxManager
	Roles   RoleCreator
	Members Membership
	Tickets TicketOpener
	Store   media.Store
}

type Service struct {
	repo    Repository
	txMgr   db.TxManager
	roles   RoleCreator
	members Membership
	tickets TicketOpener
	store   media.Store
}

func NewService(deps Deps) *Service {
	return &Service{
		repo:    deps.Repo,
		txMgr:   deps.TxMgr,
		roles:   deps.Roles,
		members: deps.Members,
		tickets: deps.Tickets,
		store:   deps.Store,
	}
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (s *Service) Find(ctx context.Context, id int64) (Company, error) {
	c, err := s.repo.Find(ctx, id)
	if err != nil {
		return Company{}, fmt.Errorf("find company %d: %w", id, err)
	}
	return c, nil
}

// Create registers a pending company owned by the actor. The company, its
// default roles, the owner's membership and the review ticket are written in
// one transaction.
func (s *Service) Create(ctx context.Context, actor *principal.Principal, params CreateParams) (Company, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return Company{}, ErrBlankName
	}

	member, err := s.members.IsMember(ctx, actor.UserID)
	if err != nil {
		return Company{}, fmt.Errorf("create company: %w", err)
	}
	if member {
		return Company{}, ErrAlreadyMember
	}

	slog.Info("Creating company...", "name", params.Name, "owner_id", actor.UserID)
	var created Company
	err = s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		id, err := s.repo.Create(ctx, params)
		if err != nil {
			return err
		}

		owner, err := s.roles.CreateDefaultRoles(ctx, id)
		if err != nil {
			return err
		}

		if err := s.members.Join(ctx, actor.UserID, id, owner.ID); err != nil {
			return err
		}

		if _, err := s.tickets.Open(ctx, ticket.OpenParams{
			Name:     params.Name + " registration",
			EntityID: id,
			Type:     ticket.TypeCompany,
		}); err != nil {
			return err
		}

		created, err = s.repo.Find(ctx, id)
		return err
	})
	if err != nil {
		return Company{}, fmt.Errorf("create company %q: %w", params.Name, err)
	}

	if err := s.store.CreateFolder(ctx, media.FolderPath(created.Name)); err != nil {
		slog.Error("failed to create company folder", "company_id", created.ID, "reason", err)
	}

	return created, nil
}

// Review activates or rejects a company once its ticket is decided.
func (s *Service) Review(ctx context.Context, id int64, approved bool) error {
	status := StatusRejected
	if approved {
		status = StatusActive
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %w", ticket.ErrEntityNotFound, err)
		}
		return fmt.Errorf("set company %d %s: %w", id, status, err)
	}
	return nil
}

func (s *Service) ListTypes(ctx context.Context) ([]Type, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list company types: %w", err)
	}
	return types, nil
}

func (s *Service) FindType(ctx context.Context, id int64) (Type, error) {
	t, err := s.repo.FindType(ctx, id)
	if err != nil {
		return Type{}, fmt.Errorf("find company type %d: %w", id, err)
	}
	return t, nil
}

func (s *Service) CreateType(ctx context.Context, t Type) (Type, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return Type{}, ErrBlankName
	}

	created, err := s.repo.CreateType(ctx, t)
	if err != nil {
		return Type{}, fmt.Errorf("create company type: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateType(ctx context.Context, t Type) (Type, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return Type{}, ErrBlankName
	}

	if _, err := s.repo.FindType(ctx, t.ID); err != nil {
		return Type{}, fmt.Errorf("find company type %d: %w", t.ID, err)
	}

	if err := s.repo.UpdateType(ctx, t); err != nil {
		return Type{}, fmt.Errorf("update company type %d: %w", t.ID, err)
	}
	return t, nil
}

func (s *Service) DeleteType(ctx context.Context, id int64) error {
	if err := s.repo.DeleteType(ctx, id); err != nil {
		return fmt.Errorf("delete company type %d: %w", id, err)
	}
	return nil
}
