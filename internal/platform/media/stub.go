package media

import (
	"context"
	"errors"
)

type StubStore struct {
	CreateFolderFunc func(ctx context.Context, folder string) error
	UploadFunc       func(ctx context.Context, params UploadParams) (Asset, error)
	DeleteFunc       func(ctx context.Context, publicID string) error
}

var _ Store = (*StubStore)(nil)

func (s *StubStore) CreateFolder(ctx context.Context, folder string) error {
	if s.CreateFolderFunc == nil {
		return errors.New("CreateFolder() not implemented by stub")
	}
	return s.CreateFolderFunc(ctx, folder)
}

func (s *StubStore) Upload(ctx context.Context, params UploadParams) (Asset, error) {
	if s.UploadFunc == nil {
		return Asset{}, errors.New("Upload() not implemented by stub")
	}
	return s.UploadFunc(ctx, params)
}

func (s *StubStore) Delete(ctx context.Context, publicID string) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, publicID)
}
