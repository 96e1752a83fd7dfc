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

// UserUpdater defines the interface that the profile update service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, userID int64, params services.UpdateUserParams) error
}

// UserUpdateRequest represents the JSON body for a profile update. Omitted
// fields keep their current values.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// Display name
	// example: Jane Doe
	Name *string `json:"name"`

	// Email address
	// example: jane@example.com
	Email *string `json:"email"`

	// New password; requires currentPassword
	// example: newsecret
	Password *string `json:"password"`

	// Current password, required when changing the password
	// example: secret123
	CurrentPassword *string `json:"currentPassword"`

	// City
	// example: Christchurch
	City *string `json:"city"`

	// Country
	// example: New Zealand
	Country *string `json:"country"`
}

// NewUserUpdateHandler returns an HTTP handler for profile updates. Only
// the user themselves may update their profile.
// @Summary Update a user profile
// @Tags users
// @Accept json
// @Security TokenAuth
// @Param id path int true "User id"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Fields to update"
// @Success 200 "Updated"
// @Failure 400 {object} handlers.errorResponse "Invalid fields"
// @Failure 401 "Missing or invalid token"
// @Failure 403 "Not this user"
// @Failure 404 "User not found"
// @Router /users/{id} [patch]
func NewUserUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid user id"})
			return
		}

		callerID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if callerID != userID {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid request body"})
			return
		}

		err = svc.UpdateUser(r.Context(), userID, services.UpdateUserParams{
			Name:            req.Name,
			Email:           req.Email,
			Password:        req.Password,
			CurrentPassword: req.CurrentPassword,
			City:            req.City,
			Country:         req.Country,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoFieldsToUpdate),
				errors.Is(err, services.ErrEmptyPassword),
				errors.Is(err, services.ErrWrongCurrentPassword),
				errors.Is(err, services.ErrInvalidEmail),
				errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
