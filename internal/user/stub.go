package user

import (
	"context"
	"errors"
	"io"

	"github.com/peaceoutommy/DMA-API/internal/file"
)

type StubService struct {
	FindFunc          func(ctx context.Context, id int64) (User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (User, error)
	SearchFunc        func(ctx context.Context, term string) ([]User, error)
	UploadPictureFunc func(ctx context.Context, id int64, filename string, body io.Reader) (file.AppFile, error)
}

var _ UserService = (*StubService)(nil)

func (s *StubService) Find(ctx context.Context, id int64) (User, error) {
	if s.FindFunc == nil {
		return User{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubService) FindByEmail(ctx context.Context, email string) (User, error) {
	if s.FindByEmailFunc == nil {
		return User{}, errors.New("FindByEmail() not implemented by stub")
	}
	return s.FindByEmailFunc(ctx, email)
}

func (s *StubService) Search(ctx context.Context, term string) ([]User, error) {
	if s.SearchFunc == nil {
		return nil, errors.New("Search() not implemented by stub")
	}
	return s.SearchFunc(ctx, term)
}

func (s *StubService) UploadPicture(ctx context.Context, id int64, filename string, body io.Reader) (file.AppFile, error) {
	if s.UploadPictureFunc == nil {
		return file.AppFile{}, errors.New("UploadPicture() not implemented by stub")
	}
	return s.UploadPictureFunc(ctx, id, filename, body)
}

type StubRepo struct {
	CreateFunc            func(ctx context.Context, params CreateParams) (User, error)
	FindFunc              func(ctx context.Context, id int64) (User, error)
	FindByEmailFunc       func(ctx context.Context, email string) (User, error)
	FindByUsernameFunc    func(ctx context.Context, username string) (User, error)
	SearchByEmailFunc     func(ctx context.Context, term string, limit int) ([]User, error)
	UpdateRoleFunc        func(ctx context.Context, id int64, role string) error
	UpdateCredentialsFunc func(ctx context.Context, id int64, username, passwordHash string) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (User, error) {
	if r.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (User, error) {
	if r.FindFunc == nil {
		return User{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	if r.FindByEmailFunc == nil {
		return User{}, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) FindByUsername(ctx context.Context, username string) (User, error) {
	if r.FindByUsernameFunc == nil {
		return User{}, errors.New("FindByUsername() not implemented by stub")
	}
	return r.FindByUsernameFunc(ctx, username)
}

func (r *StubRepo) SearchByEmail(ctx context.Context, term string, limit int) ([]User, error) {
	if r.SearchByEmailFunc == nil {
		return nil, errors.New("SearchByEmail() not implemented by stub")
	}
	return r.SearchByEmailFunc(ctx, term, limit)
}

func (r *StubRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	if r.UpdateRoleFunc == nil {
		return errors.New("UpdateRole() not implemented by stub")
	}
	return r.UpdateRoleFunc(ctx, id, role)
}

func (r *StubRepo) UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error {
	if r.UpdateCredentialsFunc == nil {
		return errors.New("UpdateCredentials() not implemented by stub")
	}
	return r.UpdateCredentialsFunc(ctx, id, username, passwordHash)
}

type StubUploader struct {
	UploadFunc func(ctx context.Context, params file.UploadParams) (file.AppFile, error)
}

var _ FileUploader = (*StubUploader)(nil)

func (u *StubUploader) Upload(ctx context.Context, params file.UploadParams) (file.AppFile, error) {
	if u.UploadFunc == nil {
		return file.AppFile{}, errors.New("Upload() not implemented by stub")
	}
	return u.UploadFunc(ctx, params)
}
