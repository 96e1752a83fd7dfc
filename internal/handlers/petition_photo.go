package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"petitions-backend/internal/middlewares"
	"petitions-backend/internal/models"
)

// PetitionPhotoer defines the interface that the petition photo service must
// implement.
type PetitionPhotoer interface {
	GetPetitionPhoto(ctx context.Context, petitionID int64) (data []byte, ext string, err error)
	SetPetitionPhoto(ctx context.Context, callerID, petitionID int64, ext string, data []byte) (replaced bool, err error)
}

// NewPetitionPhotoGetHandler returns an HTTP handler serving a petition's
// photo as raw bytes.
// @Summary Get a petition's photo
// @Tags petitions
// @Produce image/jpeg,image/png,image/gif
// @Param id path int true "Petition id"
// @Success 200 {file} binary "Photo bytes"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 404 "No photo"
// @Router /petitions/{id}/photo [get]
func NewPetitionPhotoGetHandler(svc PetitionPhotoer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petitionID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid petition id"})
			return
		}

		data, ext, err := svc.GetPetitionPhoto(r.Context(), petitionID)
		if err != nil {
			writePhotoError(w, err)
			return
		}

		w.Header().Set("Content-Type", models.ContentTypeForExtension(ext))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// NewPetitionPhotoPutHandler returns an HTTP handler for uploading a
// petition's photo. Only the petition's author may upload; 201 when the
// petition had no photo, 200 when an existing photo was replaced.
// @Summary Upload a petition's photo
// @Tags petitions
// @Accept image/jpeg,image/png,image/gif
// @Security TokenAuth
// @Param id path int true "Petition id"
// @Success 200 "Photo replaced"
// @Success 201 "Photo created"
// @Failure 400 {object} handlers.errorResponse "Unsupported content type or empty body"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Not the author"
// @Failure 404 "Petition not found"
// @Router /petitions/{id}/photo [put]
func NewPetitionPhotoPutHandler(svc PetitionPhotoer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petitionID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid petition id"})
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

		replaced, err := svc.SetPetitionPhoto(r.Context(), callerID, petitionID, ext, data)
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
