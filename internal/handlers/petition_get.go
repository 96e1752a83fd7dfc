package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
	"petitions-backend/internal/services"
)

// PetitionGetter defines the interface that the petition lookup service must implement.
type PetitionGetter interface {
	Get(ctx context.Context, petitionID int64) (*models.PetitionDB, error)
}

// PetitionDetail represents a full petition
// swagger:model PetitionDetail
type PetitionDetail struct {
	// Petition id
	// example: 7
	PetitionID int64 `json:"petitionId"`

	// Title
	// example: Save the kakapo
	Title string `json:"title"`

	// Category name
	// example: Animals
	Category string `json:"category"`

	// Author display name
	// example: Jane Doe
	AuthorName string `json:"authorName"`

	// Number of signatures
	// example: 42
	SignatureCount int64 `json:"signatureCount"`

	// Description
	// example: The kakapo needs our help.
	Description string `json:"description"`

	// Author id
	// example: 11
	AuthorID int64 `json:"authorId"`

	// Author city
	// example: Christchurch
	AuthorCity *string `json:"authorCity"`

	// Author country
	// example: New Zealand
	AuthorCountry *string `json:"authorCountry"`

	// Creation date
	CreatedDate time.Time `json:"createdDate"`

	// Closing date
	ClosingDate time.Time `json:"closingDate"`
}

func petitionDetail(p *models.PetitionDB) PetitionDetail {
	return PetitionDetail{
		PetitionID:     p.PetitionID,
		Title:          p.Title,
		Category:       p.Category,
		AuthorName:     p.AuthorName,
		SignatureCount: p.SignatureCount,
		Description:    p.Description,
		AuthorID:       p.AuthorID,
		AuthorCity:     p.AuthorCity,
		AuthorCountry:  p.AuthorCountry,
		CreatedDate:    p.CreatedDate,
		ClosingDate:    p.ClosingDate,
	}
}

// NewPetitionGetHandler returns an HTTP handler for fetching one petition.
// @Summary Get a petition
// @Tags petitions
// @Produce json
// @Param id path int true "Petition id"
// @Success 200 {object} handlers.PetitionDetail "Petition detail"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 404 "Petition not found"
// @Router /petitions/{id} [get]
func NewPetitionGetHandler(svc PetitionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petitionID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid petition id"})
			return
		}

		petition, err := svc.Get(r.Context(), petitionID)
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(petitionDetail(petition))
	}
}
