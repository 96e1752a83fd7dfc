package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
	"petitions-backend/internal/services"
)

// SignatureLister defines the interface that the signature listing service must implement.
type SignatureLister interface {
	List(ctx context.Context, petitionID int64) ([]models.SignatureDB, error)
}

// NewSignaturesListHandler returns an HTTP handler for listing the
// signatures of a petition, oldest first.
// @Summary List signatures of a petition
// @Tags signatures
// @Produce json
// @Param id path int true "Petition id"
// @Success 200 {array} models.SignatureDB "Signatures, oldest first"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 404 "Petition not found"
// @Router /petitions/{id}/signatures [get]
func NewSignaturesListHandler(svc SignatureLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petitionID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid petition id"})
			return
		}

		signatures, err := svc.List(r.Context(), petitionID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPetitionNotFound):
				w.WriteHeader(http.StatusNotFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		if signatures == nil {
			signatures = []models.SignatureDB{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(signatures)
	}
}
