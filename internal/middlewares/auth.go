package middlewares

import (
	"context"
	"net/http"

	"petitions-backend/internal/logger"
)

// Tokener extracts the session token from a request.
type Tokener interface {
	FromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver resolves a presented token to the id of the user it was
// issued to.
type UserResolver interface {
	Authenticate(ctx context.Context, tokenString string) (int64, error)
}

// AuthMiddleware rejects requests without a valid session token and puts
// the resolved user id into the request context.
func AuthMiddleware(tokener Tokener, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.FromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := users.Authenticate(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}

var userIDKey = struct{ name string }{"userID"}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the
// context. The second return value is false when the request carried no
// valid token.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
