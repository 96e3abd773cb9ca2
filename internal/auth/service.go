package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peaceoutommy/DMA-API/internal/config"
	"github.com/peaceoutommy/DMA-API/internal/platform/hash"
	"github.com/peaceoutommy/DMA-API/internal/platform/jwt"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

const maskChar = "*"

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUnknownPrincipal   = errors.New("auth: token subject does not exist")
	ErrAccountType        = errors.New("auth: account type not allowed")
	ErrMissingLoginID     = errors.New("auth: username or email required")
)

type Repository interface {
	Principal(ctx context.Context, userID int64) (*principal.Principal, error)
}

type UserService interface {
	Create(ctx context.Context, params user.CreateParams) (user.User, error)
	Find(ctx context.Context, id int64) (user.User, error)
	FindByEmail(ctx context.Context, email string) (user.User, error)
	FindByUsername(ctx context.Context, username string) (user.User, error)
}

type Service struct {
	repo    Repository
	userSvc UserService
	hasher  hash.Hasher
	signer  jwt.Signer
	cfg     *config.JWTOptions
}

var _ AuthService = (*Service)(nil)

func NewService(repo Repository, provider *Provider) *Service {
	return &Service{
		repo:    repo,
		userSvc: provider.UserSvc,
		hasher:  provider.Hasher,
		signer:  provider.Signer,
		cfg:     provider.Cfg.JWT,
	}
}

type RegisterParams struct {
	FirstName   string
	LastName    string
	MiddleNames string
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
	AccountType string
}

func (p RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", p.Username),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("account_type", p.AccountType),
	)
}

type LoginParams struct {
	Username string
	Email    string
	Password string
}

func (p LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", p.Username),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// Session is the result of a successful registration or login.
type Session struct {
	Token     string
	User      user.User
	Principal *principal.Principal
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (Session, error) {
	slog.Info("Registering user...", "params", params)

	role := params.AccountType
	switch role {
	case "":
		role = principal.RoleDonor
	case principal.RoleDonor, principal.RoleCompanyAccount:
	default:
		return Session{}, fmt.Errorf("%w: %q", ErrAccountType, role)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	var middleNames *string
	if m := strings.TrimSpace(params.MiddleNames); m != "" {
		middleNames = &m
	}

	u, err := s.userSvc.Create(ctx, user.CreateParams{
		Email:        strings.TrimSpace(params.Email),
		Username:     strings.TrimSpace(params.Username),
		PasswordHash: passwordHash,
		PhoneNumber:  strings.TrimSpace(params.PhoneNumber),
		Address:      strings.TrimSpace(params.Address),
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		MiddleNames:  middleNames,
		Role:         role,
	})
	if err != nil {
		return Session{}, fmt.Errorf("register %s: %w", params.Username, err)
	}

	return s.newSession(ctx, u)
}

// Login looks the user up by username first and falls back to email.
func (s *Service) Login(ctx context.Context, params LoginParams) (Session, error) {
	if params.Username == "" && params.Email == "" {
		return Session{}, ErrMissingLoginID
	}

	u, err := s.lookup(ctx, params)
	if err != nil {
		return Session{}, err
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return Session{}, fmt.Errorf("verify password of user %d: %w", u.ID, err)
	}
	if !ok {
		return Session{}, ErrInvalidCredentials
	}

	return s.newSession(ctx, u)
}

func (s *Service) lookup(ctx context.Context, params LoginParams) (user.User, error) {
	if params.Username != "" {
		u, err := s.userSvc.FindByUsername(ctx, params.Username)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
	}

	if params.Email != "" {
		u, err := s.userSvc.FindByEmail(ctx, params.Email)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, user.ErrNotFound) {
			return user.User{}, err
		}
	}

	return user.User{}, ErrInvalidCredentials
}

func (s *Service) newSession(ctx context.Context, u user.User) (Session, error) {
	p, err := s.repo.Principal(ctx, u.ID)
	if err != nil {
		return Session{}, err
	}

	token, err := s.Sign(p)
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, User: u, Principal: p}, nil
}

// Sign issues an access token carrying the principal's role and membership.
func (s *Service) Sign(p *principal.Principal) (string, error) {
	claims := jwt.Claims{
		UserID:      strconv.FormatInt(p.UserID, 10),
		Username:    p.Username,
		Role:        p.Role,
		CompanyID:   p.CompanyID,
		CompanyRole: p.CompanyRole,
	}

	token, err := s.signer.Sign(claims, s.cfg.TTL)
	if err != nil {
		return "", fmt.Errorf("sign token for user %d: %w", p.UserID, err)
	}
	return token, nil
}

// Principal resolves the caller identified by a verified token subject.
func (s *Service) Principal(ctx context.Context, userID int64) (*principal.Principal, error) {
	p, err := s.repo.Principal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load principal: %w", err)
	}
	return p, nil
}

func (s *Service) Me(ctx context.Context, p *principal.Principal) (user.User, error) {
	u, err := s.userSvc.Find(ctx, p.UserID)
	if err != nil {
		return user.User{}, fmt.Errorf("find current user: %w", err)
	}
	return u, nil
}
