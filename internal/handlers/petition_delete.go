package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/middlewares"
	"petitions-backend/internal/services"
)

// PetitionDeleter defines the interface that the petition deletion service must implement.
type PetitionDeleter interface {
	Delete(ctx context.Context, userID, petitionID int64) error
}

// NewPetitionDeleteHandler returns an HTTP handler for deleting petitions.
// Only the author may delete.
// @Summary Delete a petition
// @Tags petitions
// @Security TokenAuth
// @Param id path int true "Petition id"
// @Success 200 "Deleted"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Not the author"
// @Failure 404 "Petition not found"
// @Router /petitions/{id} [delete]
func NewPetitionDeleteHandler(svc PetitionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petitionID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid petition id"})
			return
		}

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), userID, petitionID); err != nil {
			switch {
			case errors.Is(err, services.ErrPetitionNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, services.ErrNotAuthor):
				w.WriteHeader(http.StatusForbidden)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
