package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTokener struct {
	token string
	err   error
}

func (s stubTokener) FromRequest(_ context.Context, _ *http.Request) (string, error) {
	return s.token, s.err
}

type stubResolver struct {
	userID int64
	err    error
}

func (s stubResolver) Authenticate(_ context.Context, _ string) (int64, error) {
	return s.userID, s.err
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		tokener        stubTokener
		resolver       stubResolver
		expectedCode   int
		expectedUserID int64
	}{
		{
			name:           "valid token puts user id in context",
			tokener:        stubTokener{token: "good-token"},
			resolver:       stubResolver{userID: 7},
			expectedCode:   http.StatusOK,
			expectedUserID: 7,
		},
		{
			name:         "missing token",
			tokener:      stubTokener{err: errors.New("no token header")},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "token rejected",
			tokener:      stubTokener{token: "stale-token"},
			resolver:     stubResolver{err: errors.New("token revoked")},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			AuthMiddleware(tt.tokener, tt.resolver)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.True(t, nextCalled)
				assert.Equal(t, tt.expectedUserID, gotUserID)
			} else {
				assert.False(t, nextCalled)
			}
		})
	}
}

func TestUserIDContextRoundTrip(t *testing.T) {
	ctx := SetUserIDToContext(context.Background(), 42)

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
