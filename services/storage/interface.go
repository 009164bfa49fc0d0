package storage

import (
	"context"
	"io"
)

// StorageService stores customer reference photos.
type StorageService interface {
	// UploadReferencePhoto stores the image and returns its public URL.
	UploadReferencePhoto(ctx context.Context, file io.Reader, appointmentID uint) (string, error)
	// DeletePhoto removes a previously uploaded image by public id.
	DeletePhoto(ctx context.Context, publicID string) error
}
