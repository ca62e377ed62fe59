package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploaded files (company logos, payroll
// documents) live. The local implementation serves development and
// single-node deployments; an object-store implementation can slot in later.
type FileStorage interface {
	// Upload stores a file and returns the storage path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL resolves a public URL for a stored path
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
