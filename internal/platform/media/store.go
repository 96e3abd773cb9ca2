package media

import (
	"context"
	"errors"
	"io"
	"strings"
)

var ErrInvalidPath = errors.New("invalid media path")

type UploadParams struct {
	Folder   string
	PublicID string
	Filename string
	Body     io.Reader
}

// Asset is a stored file. PublicID is the store-wide identifier used for deletion.
type Asset struct {
	URL      string
	PublicID string
}

// Store uploads and removes files on a media backend.
type Store interface {
	// CreateFolder creates folder. An existing folder is not an error.
	CreateFolder(ctx context.Context, folder string) error
	Upload(ctx context.Context, params UploadParams) (Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// FolderPath joins path segments with "/", trimming slashes and blanks from each.
func FolderPath(parts ...string) string {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), "/")
		if p != "" {
			segs = append(segs, p)
		}
	}
	return strings.Join(segs, "/")
}
