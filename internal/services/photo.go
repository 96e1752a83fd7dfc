package services

import (
	"context"
	"errors"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
	"petitions-backend/internal/storage"
)

// Error variables
var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrNotOwner      = errors.New("caller does not own this resource")
)

// PhotoStore stores at most one photo per entity.
type PhotoStore interface {
	Find(ctx context.Context, kind string, id int64) (data []byte, ext string, err error)
	Put(ctx context.Context, kind string, id int64, ext string, data []byte) (replaced bool, err error)
	Remove(ctx context.Context, kind string, id int64) error
}

// PhotoService handles user and petition photos.
type PhotoService struct {
	photos    PhotoStore
	users     UserReader
	petitions PetitionReader
}

// NewPhotoService creates a new PhotoService instance.
func NewPhotoService(photos PhotoStore, users UserReader, petitions PetitionReader) *PhotoService {
	return &PhotoService{
		photos:    photos,
		users:     users,
		petitions: petitions,
	}
}

// GetUserPhoto returns a user's photo bytes and extension.
func (svc *PhotoService) GetUserPhoto(ctx context.Context, userID int64) ([]byte, string, error) {
	return svc.find(ctx, models.PhotoKindUser, userID)
}

// GetPetitionPhoto returns a petition's photo bytes and extension.
func (svc *PhotoService) GetPetitionPhoto(ctx context.Context, petitionID int64) ([]byte, string, error) {
	return svc.find(ctx, models.PhotoKindPetition, petitionID)
}

func (svc *PhotoService) find(ctx context.Context, kind string, id int64) ([]byte, string, error) {
	data, ext, err := svc.photos.Find(ctx, kind, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", ErrPhotoNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to read photo", "kind", kind, "id", id, "err", err)
		return nil, "", err
	}
	return data, ext, nil
}

// SetUserPhoto stores a photo for the user, replacing any previous one.
// Only the user themselves may upload. It reports whether a photo was
// replaced.
func (svc *PhotoService) SetUserPhoto(ctx context.Context, callerID, userID int64, ext string, data []byte) (replaced bool, err error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}
	if callerID != userID {
		return false, ErrNotOwner
	}

	return svc.put(ctx, models.PhotoKindUser, userID, ext, data)
}

// SetPetitionPhoto stores a photo for the petition, replacing any previous
// one. Only the author may upload. It reports whether a photo was replaced.
func (svc *PhotoService) SetPetitionPhoto(ctx context.Context, callerID, petitionID int64, ext string, data []byte) (replaced bool, err error) {
	petition, err := svc.petitions.GetByID(ctx, petitionID)
	if err != nil {
		logger.Log.Errorw("failed to get petition", "err", err)
		return false, err
	}
	if petition == nil {
		return false, ErrPetitionNotFound
	}
	if petition.AuthorID != callerID {
		return false, ErrNotOwner
	}

	return svc.put(ctx, models.PhotoKindPetition, petitionID, ext, data)
}

func (svc *PhotoService) put(ctx context.Context, kind string, id int64, ext string, data []byte) (bool, error) {
	replaced, err := svc.photos.Put(ctx, kind, id, ext, data)
	if err != nil {
		logger.Log.Errorw("failed to store photo", "kind", kind, "id", id, "err", err)
		return false, err
	}
	return replaced, nil
}

// DeleteUserPhoto removes the user's photo. Only the user themselves may
// delete, and a missing photo is reported before the ownership check.
func (svc *PhotoService) DeleteUserPhoto(ctx context.Context, callerID, userID int64) error {
	_, _, err := svc.photos.Find(ctx, models.PhotoKindUser, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrPhotoNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to read photo", "kind", models.PhotoKindUser, "id", userID, "err", err)
		return err
	}
	if callerID != userID {
		return ErrNotOwner
	}

	if err := svc.photos.Remove(ctx, models.PhotoKindUser, userID); err != nil {
		logger.Log.Errorw("failed to delete photo", "kind", models.PhotoKindUser, "id", userID, "err", err)
		return err
	}
	return nil
}
