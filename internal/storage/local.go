package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local stores blobs as files in a single directory.
type Local struct {
	basePath string
}

// NewLocal creates a local blob store rooted at basePath, creating the
// directory when missing.
func NewLocal(basePath string) (*Local, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Local{basePath: basePath}, nil
}

func (s *Local) Put(ctx context.Context, name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.basePath, name), data, 0o644)
}

func (s *Local) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.basePath, name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s *Local) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.basePath, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
