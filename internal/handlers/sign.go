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

// Signer defines the interface that the signing service must implement.
type Signer interface {
	Sign(ctx context.Context, userID, petitionID int64) error
}

// NewSignHandler returns an HTTP handler for signing a petition.
// @Summary Sign a petition
// @Tags signatures
// @Security TokenAuth
// @Param id path int true "Petition id"
// @Success 201 "Signed"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Already signed, petition closed or own petition"
// @Failure 404 "Petition not found"
// @Router /petitions/{id}/signatures [post]
func NewSignHandler(svc Signer) http.HandlerFunc {
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

		if err := svc.Sign(r.Context(), userID, petitionID); err != nil {
			switch {
			case errors.Is(err, services.ErrPetitionNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, services.ErrAlreadySigned),
				errors.Is(err, services.ErrPetitionClosed),
				errors.Is(err, services.ErrOwnPetition):
				w.WriteHeader(http.StatusForbidden)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}
