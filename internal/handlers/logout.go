package handlers

import (
	"context"
	"net/http"

	"petitions-backend/internal/logger"
	"petitions-backend/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, userID int64) error
}

// NewLogoutHandler returns an HTTP handler for user logout. Requires a
// valid session token; the stored token is cleared so it cannot be reused.
// @Summary User logout
// @Description Revokes the current session token.
// @Tags users
// @Security TokenAuth
// @Success 200 "Logged out"
// @Failure 401 "Missing or invalid token"
// @Router /users/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
