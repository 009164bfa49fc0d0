package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const referencePhotoFolder = "barberbook/appointments"

// CloudinaryStorageService implements StorageService against Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorageService(cld *cloudinary.Cloudinary) *CloudinaryStorageService {
	return &CloudinaryStorageService{cld: cld}
}

// UploadReferencePhoto uploads the image under a generated public id and
// returns the served HTTPS URL.
func (s *CloudinaryStorageService) UploadReferencePhoto(ctx context.Context, file io.Reader, appointmentID uint) (string, error) {
	params := uploader.UploadParams{
		Folder:   referencePhotoFolder,
		PublicID: fmt.Sprintf("appt_%d_%s", appointmentID, uuid.New().String()[:8]),
	}
	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to upload photo: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryStorageService: no URL returned for upload")
	}
	return result.SecureURL, nil
}

// DeletePhoto removes an uploaded image.
func (s *CloudinaryStorageService) DeletePhoto(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("CloudinaryStorageService: failed to delete photo: %w", err)
	}
	return nil
}
