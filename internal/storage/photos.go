package storage

import (
	"context"
	"errors"
	"fmt"

	"petitions-backend/internal/models"
)

// Photos stores at most one photo per entity on top of a blob store.
// Blobs are named "<kind>_<id>.<ext>"; because the extension of an existing
// photo is unknown, lookups probe every accepted extension.
type Photos struct {
	blobs Blobs
}

// NewPhotos creates a photo store over the given blob backend.
func NewPhotos(blobs Blobs) *Photos {
	return &Photos{blobs: blobs}
}

func photoName(kind string, id int64, ext string) string {
	return fmt.Sprintf("%s_%d.%s", kind, id, ext)
}

// Find returns the photo bytes and extension for an entity, or ErrNotFound.
func (p *Photos) Find(ctx context.Context, kind string, id int64) ([]byte, string, error) {
	for _, ext := range models.PhotoExtensions {
		data, err := p.blobs.Get(ctx, photoName(kind, id, ext))
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return data, ext, nil
	}
	return nil, "", ErrNotFound
}

// Put stores a photo for an entity, removing any previous photo stored
// under a different extension. It reports whether a photo was replaced.
func (p *Photos) Put(ctx context.Context, kind string, id int64, ext string, data []byte) (replaced bool, err error) {
	_, oldExt, err := p.Find(ctx, kind, id)
	switch {
	case errors.Is(err, ErrNotFound):
		replaced = false
	case err != nil:
		return false, err
	default:
		replaced = true
		if oldExt != ext {
			if err := p.blobs.Delete(ctx, photoName(kind, id, oldExt)); err != nil {
				return false, err
			}
		}
	}

	if err := p.blobs.Put(ctx, photoName(kind, id, ext), data); err != nil {
		return false, err
	}
	return replaced, nil
}

// Remove deletes the photo of an entity, or returns ErrNotFound when the
// entity has none.
func (p *Photos) Remove(ctx context.Context, kind string, id int64) error {
	_, ext, err := p.Find(ctx, kind, id)
	if err != nil {
		return err
	}
	return p.blobs.Delete(ctx, photoName(kind, id, ext))
}
