package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no blob exists under the requested name.
var ErrNotFound = errors.New("file not found")

// Blobs is a flat namespace of named binary blobs. Implementations exist
// for the local filesystem and S3.
type Blobs interface {
	// Put stores data under name, overwriting any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// Get retrieves the blob stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes the blob stored under name. Deleting a missing blob
	// is not an error.
	Delete(ctx context.Context, name string) error
}

// Type selects the blob backend.
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config holds blob storage configuration.
type Config struct {
	Type         Type
	LocalPath    string // base directory for local storage
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// New creates a blob store from configuration.
func New(cfg Config) (Blobs, error) {
	switch cfg.Type {
	case TypeLocal:
		return NewLocal(cfg.LocalPath)
	case TypeS3:
		return NewS3(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
