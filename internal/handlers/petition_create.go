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

// PetitionCreator defines the interface that the petition creation service must implement.
type PetitionCreator interface {
	Create(ctx context.Context, authorID int64, title, description string, categoryID int64, closingDate time.Time) (int64, error)
}

// PetitionCreateRequest represents the JSON body for creating a petition
// swagger:model PetitionCreateRequest
type PetitionCreateRequest struct {
	// Title
	// required: true
	// example: Save the kakapo
	Title string `json:"title"`

	// Description
	// required: true
	// example: The kakapo needs our help.
	Description string `json:"description"`

	// Category id
	// required: true
	// example: 3
	CategoryID *int64 `json:"categoryId"`

	// Closing date, strictly in the future
	// required: true
	ClosingDate *time.Time `json:"closingDate"`
}

// PetitionCreateResponse represents a successful petition creation
// swagger:model PetitionCreateResponse
type PetitionCreateResponse struct {
	// Id of the new petition
	// example: 7
	PetitionID int64 `json:"petitionId"`
}

// NewPetitionCreateHandler returns an HTTP handler for creating petitions.
// @Summary Create a petition
// @Tags petitions
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param petitionCreateRequest body handlers.PetitionCreateRequest true "New petition"
// @Success 201 {object} handlers.PetitionCreateResponse "Petition created"
// @Failure 400 {object} handlers.errorResponse "Missing fields, unknown category or closing date not in the future"
// @Failure 401 "Missing or invalid token"
// @Router /petitions [post]
func NewPetitionCreateHandler(svc PetitionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req PetitionCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid request body"})
			return
		}

		if req.Title == "" || req.Description == "" || req.CategoryID == nil || req.ClosingDate == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "title, description, categoryId and closingDate are required"})
			return
		}

		petitionID, err := svc.Create(r.Context(), authorID, req.Title, req.Description, *req.CategoryID, *req.ClosingDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound),
				errors.Is(err, services.ErrClosingDateInPast):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PetitionCreateResponse{PetitionID: petitionID})
	}
}
