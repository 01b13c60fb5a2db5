package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded files live. Paths are relative to the
// store's root, using forward slashes.
type Storage interface {
	// Save writes content at path, creating parent directories as needed.
	// An existing file at the same path is overwritten.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at path for reading. The caller closes the reader.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at path.
	Delete(ctx context.Context, path string) error
}
