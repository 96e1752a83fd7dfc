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

// Unsigner defines the interface that the unsigning service must implement.
type Unsigner interface {
	Unsign(ctx context.Context, userID, petitionID int64) error
}

// NewUnsignHandler returns an HTTP handler for removing the caller's
// signature from a petition.
// @Summary Remove a signature
// @Tags signatures
// @Security TokenAuth
// @Param id path int true "Petition id"
// @Success 200 "Signature removed"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Not signed, petition closed or own petition"
// @Failure 404 "Petition not found"
// @Router /petitions/{id}/signatures [delete]
func NewUnsignHandler(svc Unsigner) http.HandlerFunc {
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

		if err := svc.Unsign(r.Context(), userID, petitionID); err != nil {
			switch {
			case errors.Is(err, services.ErrPetitionNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, services.ErrNotSigned),
				errors.Is(err, services.ErrPetitionClosed),
				errors.Is(err, services.ErrOwnPetition):
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
