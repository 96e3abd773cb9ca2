package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore writes files under a directory and serves them from baseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

var _ Store = (*LocalStore)(nil)

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create media dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the root directory files are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) CreateFolder(_ context.Context, folder string) error {
	full, err := s.resolve(folder)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(full, 0o750); err != nil {
		return fmt.Errorf("create folder %s: %w", folder, err)
	}
	return nil
}

// Upload writes params.Body to {folder}/{public id}{ext}, where ext is the
// lowercased extension of params.Filename.
func (s *LocalStore) Upload(ctx context.Context, params UploadParams) (Asset, error) {
	if err := s.CreateFolder(ctx, params.Folder); err != nil {
		return Asset{}, err
	}

	publicID := path.Join(params.Folder, params.PublicID+strings.ToLower(path.Ext(params.Filename)))
	full, err := s.resolve(publicID)
	if err != nil {
		return Asset{}, err
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return Asset{}, fmt.Errorf("create file %s: %w", publicID, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, params.Body); err != nil {
		return Asset{}, fmt.Errorf("write file %s: %w", publicID, err)
	}

	slog.Info("File stored.", "public_id", publicID)

	return Asset{URL: s.baseURL + "/" + publicID, PublicID: publicID}, nil
}

func (s *LocalStore) Delete(_ context.Context, publicID string) error {
	full, err := s.resolve(publicID)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove file %s: %w", publicID, err)
	}
	return nil
}

// resolve maps a slash separated relative path into the store directory.
func (s *LocalStore) resolve(rel string) (string, error) {
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, rel)
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+rel), "/")
	return filepath.Join(s.dir, filepath.FromSlash(cleaned)), nil
}
