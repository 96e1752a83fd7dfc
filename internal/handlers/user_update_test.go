package handlers

import (
	"bytes"
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

func strPtr(s string) *string { return &s }

func TestUserUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		pathID       string
		callerID     int64
		noCaller     bool
		body         any
		rawBody      string
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
	}{
		{
			name:     "success",
			pathID:   "7",
			callerID: 7,
			body:     UserUpdateRequest{Name: strPtr("Janet"), City: strPtr("Dunedin")},
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(7), services.UpdateUserParams{
						Name: strPtr("Janet"),
						City: strPtr("Dunedin"),
					}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid id",
			pathID:       "abc",
			callerID:     7,
			body:         UserUpdateRequest{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no token",
			pathID:       "7",
			noCaller:     true,
			body:         UserUpdateRequest{Name: strPtr("Janet")},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "another user's profile",
			pathID:       "7",
			callerID:     8,
			body:         UserUpdateRequest{Name: strPtr("Janet")},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "invalid JSON",
			pathID:       "7",
			callerID:     7,
			rawBody:      "{not json",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "wrong current password",
			pathID:   "7",
			callerID: 7,
			body:     UserUpdateRequest{Password: strPtr("new"), CurrentPassword: strPtr("bad")},
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(7), gomock.Any()).
					Return(services.ErrWrongCurrentPassword)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "email taken",
			pathID:   "7",
			callerID: 7,
			body:     UserUpdateRequest{Email: strPtr("taken@example.com")},
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(7), gomock.Any()).
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "user not found",
			pathID:   "7",
			callerID: 7,
			body:     UserUpdateRequest{Name: strPtr("Janet")},
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(7), gomock.Any()).
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "internal error",
			pathID:   "7",
			callerID: 7,
			body:     UserUpdateRequest{Name: strPtr("Janet")},
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), int64(7), gomock.Any()).
					Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPatch, "/users/"+tt.pathID, bytes.NewReader(body))
			req = withPathID(req, "id", tt.pathID)
			if !tt.noCaller {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), tt.callerID))
			}
			rr := httptest.NewRecorder()

			NewUserUpdateHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
