package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"petitions-backend/internal/middlewares"
	"petitions-backend/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(m *MockLoginer)
		expectedCode int
	}{
		{
			name: "success",
			body: LoginRequest{Email: "jane@example.com", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jane@example.com", "secret").
					Return(int64(11), "token-abc", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "wrong credentials",
			body: LoginRequest{Email: "jane@example.com", Password: "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jane@example.com", "wrong").
					Return(int64(0), "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing password",
			body:         LoginRequest{Email: "jane@example.com"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			rawBody:      "{not json",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: LoginRequest{Email: "jane@example.com", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jane@example.com", "secret").
					Return(int64(0), "", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp LoginResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, int64(11), resp.UserID)
				assert.Equal(t, "token-abc", resp.Token)
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), int64(7)).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), 7))
		rr := httptest.NewRecorder()

		NewLogoutHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		rr := httptest.NewRecorder()

		NewLogoutHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), int64(7)).Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(context.Background(), 7))
		rr := httptest.NewRecorder()

		NewLogoutHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
