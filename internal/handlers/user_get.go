package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/models"
	"petitions-backend/internal/services"
	"petitions-backend/internal/token"
)

// UserGetter defines the interface that the user lookup service must
// implement. Authenticate is used to decide whether the requester may see
// the email field.
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (*models.UserDB, error)
	Authenticate(ctx context.Context, tokenString string) (int64, error)
}

// UserResponse represents a user profile
// swagger:model UserResponse
type UserResponse struct {
	// Display name
	// example: Jane Doe
	Name string `json:"name"`

	// City
	// example: Christchurch
	City *string `json:"city"`

	// Country
	// example: New Zealand
	Country *string `json:"country"`

	// Email, present only when the requester is this user
	// example: jane@example.com
	Email string `json:"email,omitempty"`
}

// NewUserGetHandler returns an HTTP handler for fetching a user profile.
// The email field is included only when the request carries the user's own
// valid session token.
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 400 {object} handlers.errorResponse "Invalid id format"
// @Failure 404 "User not found"
// @Router /users/{id} [get]
func NewUserGetHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid user id"})
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		resp := UserResponse{
			Name:    user.Name,
			City:    user.City,
			Country: user.Country,
		}
		if tokenString := r.Header.Get(token.Header); tokenString != "" {
			if callerID, err := svc.Authenticate(r.Context(), tokenString); err == nil && callerID == userID {
				resp.Email = user.Email
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
