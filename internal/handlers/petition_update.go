package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/middlewares"
	"petitions-backend/internal/services"
)

// PetitionUpdater defines the interface that the petition update service must implement.
type PetitionUpdater interface {
	Update(ctx context.Context, userID, petitionID int64, params services.UpdatePetitionParams) error
}

// PetitionUpdateRequest represents the JSON body for a petition update.
// Omitted fields keep their current values.
// swagger:model PetitionUpdateRequest
type PetitionUpdateRequest struct {
	// Title
	// example: Save the kakapo
	Title *string `json:"title"`

	// Description
	// example: The kakapo needs our help.
	Description *string `json:"description"`

	// Category id
	// example: 3
	CategoryID *int64 `json:"categoryId"`

	// Closing date, strictly in the future when supplied
	ClosingDate *time.Time `json:"closingDate"`
}

// NewPetitionUpdateHandler returns an HTTP handler for petition updates.
// Only the author may update.
// @Summary Update a petition
// @Tags petitions
// @Accept json
// @Security TokenAuth
// @Param id path int true "Petition id"
// @Param petitionUpdateRequest body handlers.PetitionUpdateRequest true "Fields to update"
// @Success 200 "Updated"
// @Failure 400 {object} handlers.errorResponse "Unknown category or closing date not in the future"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Not the author"
// @Failure 404 "Petition not found"
// @Router /petitions/{id} [patch]
func NewPetitionUpdateHandler(svc PetitionUpdater) http.HandlerFunc {
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

		var req PetitionUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid request body"})
			return
		}

		err = svc.Update(r.Context(), userID, petitionID, services.UpdatePetitionParams{
			Title:       req.Title,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			ClosingDate: req.ClosingDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPetitionNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, services.ErrCategoryNotFound),
				errors.Is(err, services.ErrClosingDateInPast):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
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
