package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
	"petitions-backend/internal/services"
)

// PetitionLister defines the interface that the petition listing service must implement.
type PetitionLister interface {
	List(ctx context.Context, params services.ListParams) ([]models.PetitionDB, error)
}

// PetitionOverview represents one row of a petition listing
// swagger:model PetitionOverview
type PetitionOverview struct {
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
}

// NewPetitionsListHandler returns an HTTP handler for listing petitions.
// @Summary List petitions
// @Description Lists petitions with optional search, filters, sorting and pagination.
// @Tags petitions
// @Produce json
// @Param q query string false "Case-insensitive title substring"
// @Param categoryId query int false "Filter by category id"
// @Param authorId query int false "Filter by author id"
// @Param sortBy query string false "SIGNATURES_DESC (default), SIGNATURES_ASC, ALPHABETICAL_ASC or ALPHABETICAL_DESC"
// @Param startIndex query int false "Pagination start index, clamped"
// @Param count query int false "Pagination count, clamped"
// @Success 200 {array} handlers.PetitionOverview "Petition listing"
// @Failure 400 {object} handlers.errorResponse "Unknown sort key, unknown category or malformed number"
// @Router /petitions [get]
func NewPetitionsListHandler(svc PetitionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parseListParams(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
			return
		}

		petitions, err := svc.List(r.Context(), params)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSortKey),
				errors.Is(err, services.ErrCategoryNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		overviews := make([]PetitionOverview, 0, len(petitions))
		for _, p := range petitions {
			overviews = append(overviews, PetitionOverview{
				PetitionID:     p.PetitionID,
				Title:          p.Title,
				Category:       p.Category,
				AuthorName:     p.AuthorName,
				SignatureCount: p.SignatureCount,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(overviews)
	}
}

func parseListParams(r *http.Request) (services.ListParams, error) {
	query := r.URL.Query()
	params := services.ListParams{
		Q:      query.Get("q"),
		SortBy: query.Get("sortBy"),
	}

	if raw := query.Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, errors.New("invalid categoryId")
		}
		params.CategoryID = &categoryID
	}

	if raw := query.Get("authorId"); raw != "" {
		authorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, errors.New("invalid authorId")
		}
		params.AuthorID = &authorID
	}

	if raw := query.Get("startIndex"); raw != "" {
		startIndex, err := strconv.Atoi(raw)
		if err != nil {
			return params, errors.New("invalid startIndex")
		}
		params.StartIndex = startIndex
	}

	if raw := query.Get("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return params, errors.New("invalid count")
		}
		params.Count = &count
	}

	return params, nil
}
