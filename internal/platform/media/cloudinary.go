package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore stores files on Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

var _ Store = (*CloudinaryStore)(nil)

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("new cloudinary client: %w", err)
	}

	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) CreateFolder(ctx context.Context, folder string) error {
	slog.Info("Creating media folder...", "folder", folder)

	res, err := s.cld.Admin.CreateFolder(ctx, admin.CreateFolderParams{Folder: folder})
	if err != nil {
		if isAlreadyExists(err.Error()) {
			return nil
		}
		return fmt.Errorf("create folder %s: %w", folder, err)
	}

	if msg := res.Error.Message; msg != "" && !isAlreadyExists(msg) {
		return fmt.Errorf("create folder %s: %s", folder, msg)
	}

	return nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, params UploadParams) (Asset, error) {
	slog.Info("Uploading file...", "folder", params.Folder, "public_id", params.PublicID)

	res, err := s.cld.Upload.Upload(ctx, params.Body, uploader.UploadParams{
		Folder:       params.Folder,
		PublicID:     params.PublicID,
		ResourceType: "auto",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return Asset{}, fmt.Errorf("upload %s: %w", params.PublicID, err)
	}

	if msg := res.Error.Message; msg != "" {
		return Asset{}, fmt.Errorf("upload %s: %s", params.PublicID, msg)
	}

	if res.SecureURL == "" {
		return Asset{}, errors.New("upload returned no secure url")
	}

	return Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID, Invalidate: api.Bool(true)})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}

	if msg := res.Error.Message; msg != "" {
		return fmt.Errorf("destroy %s: %s", publicID, msg)
	}

	return nil
}

func isAlreadyExists(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "already exists")
}
