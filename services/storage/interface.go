package storage

import (
	"context"
	"time"
)

// StorageService is the external file-service collaborator for attachment
// bytes. Only the returned identifiers are retained on interventions.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and
	// returns its permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// GetDownloadURL constructs a public URL for a stored file.
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
	// DeleteFile removes a stored file by its identifier.
	DeleteFile(ctx context.Context, publicID string) error
}
