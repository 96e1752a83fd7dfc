package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/middlewares"
	"petitions-backend/internal/models"
	"petitions-backend/internal/services"
)

// UserPhotoer defines the interface that the user photo service must implement.
type UserPhotoer interface {
	GetUserPhoto(ctx context.Context, userID int64) (data []byte, ext string, err error)
	SetUserPhoto(ctx context.Context, callerID, userID int64, ext string, data []byte) (replaced bool, err error)
	DeleteUserPhoto(ctx context.Context, callerID, userID int64) error
}

// maxPhotoBytes caps photo upload bodies.
const maxPhotoBytes = 50 << 20

// NewUserPhotoGetHandler returns an HTTP handler serving a user's photo as
// raw bytes.
// @Summary Get a user's photo
// @Tags users
// @Produce image/jpeg,image/png,image/gif
// @Param id path int true "User id"
// @Success 200 {file} binary "Photo bytes"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 404 "No photo"
// @Router /users/{id}/photo [get]
func NewUserPhotoGetHandler(svc UserPhotoer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid user id"})
			return
		}

		data, ext, err := svc.GetUserPhoto(r.Context(), userID)
		if err != nil {
			writePhotoError(w, err)
			return
		}

		w.Header().Set("Content-Type", models.ContentTypeForExtension(ext))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// NewUserPhotoPutHandler returns an HTTP handler for uploading a user's
// photo. The raw body is stored as-is; 201 when the user had no photo, 200
// when an existing photo was replaced.
// @Summary Upload a user's photo
// @Tags users
// @Accept image/jpeg,image/png,image/gif
// @Security TokenAuth
// @Param id path int true "User id"
// @Success 200 "Photo replaced"
// @Success 201 "Photo created"
// @Failure 400 {object} handlers.errorResponse "Unsupported content type or empty body"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Not this user"
// @Failure 404 "User not found"
// @Router /users/{id}/photo [put]
func NewUserPhotoPutHandler(svc UserPhotoer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid user id"})
			return
		}

		callerID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ext, data, err := readPhotoBody(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
			return
		}

		replaced, err := svc.SetUserPhoto(r.Context(), callerID, userID, ext, data)
		if err != nil {
			writePhotoError(w, err)
			return
		}

		if replaced {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusCreated)
		}
	}
}

// NewUserPhotoDeleteHandler returns an HTTP handler for deleting a user's
// photo.
// @Summary Delete a user's photo
// @Tags users
// @Security TokenAuth
// @Param id path int true "User id"
// @Success 200 "Photo deleted"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Not this user"
// @Failure 404 "No photo"
// @Router /users/{id}/photo [delete]
func NewUserPhotoDeleteHandler(svc UserPhotoer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid user id"})
			return
		}

		callerID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteUserPhoto(r.Context(), callerID, userID); err != nil {
			writePhotoError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// readPhotoBody validates the Content-Type and reads the raw photo bytes.
func readPhotoBody(r *http.Request) (ext string, data []byte, err error) {
	ext, ok := models.PhotoContentTypes[r.Header.Get("Content-Type")]
	if !ok {
		return "", nil, errors.New("content type must be image/jpeg, image/png or image/gif")
	}

	data, err = io.ReadAll(io.LimitReader(r.Body, maxPhotoBytes))
	if err != nil {
		return "", nil, errors.New("failed to read request body")
	}
	if len(data) == 0 {
		return "", nil, errors.New("empty request body")
	}
	return ext, data, nil
}

func writePhotoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPhotoNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPetitionNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, services.ErrNotOwner):
		w.WriteHeader(http.StatusForbidden)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
