package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/platform/media"
	"github.com/peaceoutommy/DMA-API/internal/principal"
)

const searchLimit = 20

var (
	ErrNotFound  = errors.New("user: not found")
	ErrDuplicate = errors.New("user: email, username or phone number already taken")
)

type Repository interface {
	Create(ctx context.Context, params CreateParams) (User, error)
	Find(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	SearchByEmail(ctx context.Context, term string, limit int) ([]User, error)
	UpdateRole(ctx context.Context, id int64, role string) error
	UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error
}

type FileUploader interface {
	Upload(ctx context.Context, params file.UploadParams) (file.AppFile, error)
}

type CreateParams struct {
	Email        string
	Username     string
	PasswordHash string
	PhoneNumber  string
	Address      string
	FirstName    string
	LastName     string
	MiddleNames  *string
	Role         string
}

func (p CreateParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", p.Username),
		slog.String("email", "*"),
		slog.String("role", p.Role),
	)
}

type Service struct {
	repo  Repository
	files FileUploader
}

func NewService(repo Repository, files FileUploader) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (User, error) {
	slog.Info("Creating user...", "params", params)
	u, err := s.repo.Create(ctx, params)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) Find(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.Find(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return u, nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (s *Service) FindByUsername(ctx context.Context, username string) (User, error) {
	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return User{}, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

// Search returns up to 20 users whose email contains term, ignoring case.
func (s *Service) Search(ctx context.Context, term string) ([]User, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []User{}, nil
	}

	users, err := s.repo.SearchByEmail(ctx, term, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (s *Service) SetRole(ctx context.Context, id int64, role string) error {
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return fmt.Errorf("set role of user %d: %w", id, err)
	}
	return nil
}

// CreateAdmin promotes the user registered under params.Email to ADMIN, or
// creates an ADMIN account when no such user exists. A promoted user takes
// the given username and password hash.
func (s *Service) CreateAdmin(ctx context.Context, params CreateParams) (User, error) {
	slog.Info("Creating admin...", "params", params)

	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(params.Email))
	if err == nil {
		if err := s.repo.UpdateCredentials(ctx, u.ID, params.Username, params.PasswordHash); err != nil {
			return User{}, fmt.Errorf("reset credentials of user %d: %w", u.ID, err)
		}
		u.Username = params.Username

		if err := s.repo.UpdateRole(ctx, u.ID, principal.RoleAdmin); err != nil {
			return User{}, fmt.Errorf("promote user %d: %w", u.ID, err)
		}
		u.Role = principal.RoleAdmin
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("find user by email: %w", err)
	}

	params.Role = principal.RoleAdmin
	u, err = s.repo.Create(ctx, params)
	if err != nil {
		return User{}, fmt.Errorf("create admin: %w", err)
	}
	return u, nil
}

// UploadPicture stores a profile picture under users/{id}.
func (s *Service) UploadPicture(ctx context.Context, id int64, filename string, body io.Reader) (file.AppFile, error) {
	if _, err := s.repo.Find(ctx, id); err != nil {
		return file.AppFile{}, fmt.Errorf("find user %d: %w", id, err)
	}

	f, err := s.files.Upload(ctx, file.UploadParams{
		EntityType: file.EntityUser,
		EntityID:   id,
		FileType:   file.TypeProfilePicture,
		Folder:     media.FolderPath("users", strconv.FormatInt(id, 10)),
		Filename:   filename,
		Body:       body,
	})
	if err != nil {
		return file.AppFile{}, fmt.Errorf("upload picture of user %d: %w", id, err)
	}
	return f, nil
}
