package auth

import (
	"context"
	"errors"

	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

type StubService struct {
	RegisterFunc func(ctx context.Context, params RegisterParams) (Session, error)
	LoginFunc    func(ctx context.Context, params LoginParams) (Session, error)
	MeFunc       func(ctx context.Context, p *principal.Principal) (user.User, error)
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) Register(ctx context.Context, params RegisterParams) (Session, error) {
	if s.RegisterFunc == nil {
		return Session{}, errors.New("Register() not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (Session, error) {
	if s.LoginFunc == nil {
		return Session{}, errors.New("Login() not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

func (s *StubService) Me(ctx context.Context, p *principal.Principal) (user.User, error) {
	if s.MeFunc == nil {
		return user.User{}, errors.New("Me() not implemented by stub")
	}
	return s.MeFunc(ctx, p)
}

type StubRepo struct {
	PrincipalFunc func(ctx context.Context, userID int64) (*principal.Principal, error)
}

var _ Repository = (*StubRepo)(nil)
var _ PrincipalLoader = (*StubRepo)(nil)

func (r *StubRepo) Principal(ctx context.Context, userID int64) (*principal.Principal, error) {
	if r.PrincipalFunc == nil {
		return nil, errors.New("Principal() not implemented by stub")
	}
	return r.PrincipalFunc(ctx, userID)
}

type StubUserService struct {
	CreateFunc         func(ctx context.Context, params user.CreateParams) (user.User, error)
	FindFunc           func(ctx context.Context, id int64) (user.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (user.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (user.User, error)
}

var _ UserService = (*StubUserService)(nil)

func (s *StubUserService) Create(ctx context.Context, params user.CreateParams) (user.User, error) {
	if s.CreateFunc == nil {
		return user.User{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubUserService) Find(ctx context.Context, id int64) (user.User, error) {
	if s.FindFunc == nil {
		return user.User{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubUserService) FindByEmail(ctx context.Context, email string) (user.User, error) {
	if s.FindByEmailFunc == nil {
		return user.User{}, user.ErrNotFound
	}
	return s.FindByEmailFunc(ctx, email)
}

func (s *StubUserService) FindByUsername(ctx context.Context, username string) (user.User, error) {
	if s.FindByUsernameFunc == nil {
		return user.User{}, user.ErrNotFound
	}
	return s.FindByUsernameFunc(ctx, username)
}
