package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/peaceoutommy/DMA-API/internal/platform/media"
)

const sniffLen = 512

var (
	ErrUnsupportedType = errors.New("file: unsupported file type")
	ErrEmpty           = errors.New("file: empty file")
	ErrUpload          = errors.New("file: upload failed")
)

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Repository interface {
	Create(ctx context.Context, f AppFile) (AppFile, error)
	ListByEntity(ctx context.Context, entityType EntityType, entityIDs ...int64) ([]AppFile, error)
	DeleteByEntity(ctx context.Context, entityType EntityType, entityID int64) error
}

type UploadParams struct {
	EntityType EntityType
	EntityID   int64
	FileType   Type
	Folder     string
	Filename   string
	Body       io.Reader
}

type Service struct {
	repo  Repository
	store media.Store
}

func NewService(repo Repository, store media.Store) *Service {
	return &Service{repo: repo, store: store}
}

// Upload accepts jpeg, png, gif and webp images, stores them under a random
// public id and records the resulting AppFile.
func (s *Service) Upload(ctx context.Context, params UploadParams) (AppFile, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(params.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return AppFile{}, fmt.Errorf("read %s: %w", params.Filename, err)
	}
	if n == 0 {
		return AppFile{}, ErrEmpty
	}
	head = head[:n]

	mimeType := http.DetectContentType(head)
	ext, ok := imageTypes[mimeType]
	if !ok {
		return AppFile{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}

	// the stored extension follows the sniffed content, never the client name.
	filename := strings.TrimSuffix(params.Filename, filepath.Ext(params.Filename)) + ext

	slog.Info("Uploading file...", "folder", params.Folder, "type", mimeType)
	asset, err := s.store.Upload(ctx, media.UploadParams{
		Folder:   params.Folder,
		PublicID: uuid.NewString(),
		Filename: filename,
		Body:     io.MultiReader(bytes.NewReader(head), params.Body),
	})
	if err != nil {
		return AppFile{}, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	f, err := s.repo.Create(ctx, AppFile{
		URL:        asset.URL,
		PublicID:   asset.PublicID,
		EntityID:   params.EntityID,
		EntityType: params.EntityType,
		FileType:   params.FileType,
	})
	if err != nil {
		s.Discard(ctx, asset.PublicID)
		return AppFile{}, fmt.Errorf("record uploaded file: %w", err)
	}

	return f, nil
}

func (s *Service) List(ctx context.Context, entityType EntityType, entityID int64) ([]AppFile, error) {
	files, err := s.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list files of %s %d: %w", entityType, entityID, err)
	}
	return files, nil
}

// ListURLs returns the file urls of each entity keyed by entity id.
func (s *Service) ListURLs(ctx context.Context, entityType EntityType, entityIDs ...int64) (map[int64][]string, error) {
	files, err := s.repo.ListByEntity(ctx, entityType, entityIDs...)
	if err != nil {
		return nil, fmt.Errorf("list files of %s: %w", entityType, err)
	}

	urls := make(map[int64][]string, len(entityIDs))
	for _, f := range files {
		urls[f.EntityID] = append(urls[f.EntityID], f.URL)
	}
	return urls, nil
}

// DeleteAll removes the records of an entity's files and returns their public
// ids so the caller can discard the stored assets once its transaction commits.
func (s *Service) DeleteAll(ctx context.Context, entityType EntityType, entityID int64) ([]string, error) {
	files, err := s.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list files of %s %d: %w", entityType, entityID, err)
	}

	if err := s.repo.DeleteByEntity(ctx, entityType, entityID); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.PublicID)
	}
	return ids, nil
}

// Discard deletes stored assets. Failures are logged and otherwise ignored.
func (s *Service) Discard(ctx context.Context, publicIDs ...string) {
	for _, id := range publicIDs {
		if err := s.store.Delete(ctx, id); err != nil {
			slog.Error("failed to delete stored file", "public_id", id, "reason", err)
		}
	}
}
