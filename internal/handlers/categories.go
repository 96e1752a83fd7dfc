package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
)

// CategoryLister defines the interface that the category service must implement.
type CategoryLister interface {
	Categories(ctx context.Context) ([]models.CategoryDB, error)
}

// NewCategoriesHandler returns an HTTP handler for the category reference
// data.
// @Summary List categories
// @Tags petitions
// @Produce json
// @Success 200 {array} models.CategoryDB "All categories"
// @Router /petitions/categories [get]
func NewCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(categories)
	}
}
