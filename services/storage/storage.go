package storage

import (
	"context"
	"fmt"

	"nestfind/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// StorageService stores listing images and returns their public URLs.
type StorageService interface {
	UploadImage(ctx context.Context, localFilePath, folder string) (*UploadedImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// UploadedImage describes a stored image.
type UploadedImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService builds a storage service from the configured
// Cloudinary credentials.
func NewCloudinaryStorageService() (*CloudinaryStorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadImage uploads a file under a fresh public ID and returns its
// secure URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, localFilePath, folder string) (*UploadedImage, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder:   folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("no public ID returned for uploaded image")
	}
	return &UploadedImage{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

// DeleteImage removes a stored image by its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	return nil
}
