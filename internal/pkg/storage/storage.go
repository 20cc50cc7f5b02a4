package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded employee documents end up.
type FileStorage interface {
	// Upload stores a file under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored key.
	URL(path string) string

	// Exists checks if a stored file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
