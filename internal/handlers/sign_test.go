package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"petitions-backend/internal/middlewares"
	"petitions-backend/internal/models"
	"petitions-backend/internal/services"
)

func TestSignHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		pathID       string
		noCaller     bool
		mockSetup    func(m *MockSigner)
		expectedCode int
	}{
		{
			name:   "success",
			pathID: "7",
			mockSetup: func(m *MockSigner) {
				m.EXPECT().Sign(gomock.Any(), int64(5), int64(7)).Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid id",
			pathID:       "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no token",
			pathID:       "7",
			noCaller:     true,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "petition not found",
			pathID: "99",
			mockSetup: func(m *MockSigner) {
				m.EXPECT().Sign(gomock.Any(), int64(5), int64(99)).Return(services.ErrPetitionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "already signed",
			pathID: "7",
			mockSetup: func(m *MockSigner) {
				m.EXPECT().Sign(gomock.Any(), int64(5), int64(7)).Return(services.ErrAlreadySigned)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "petition closed",
			pathID: "7",
			mockSetup: func(m *MockSigner) {
				m.EXPECT().Sign(gomock.Any(), int64(5), int64(7)).Return(services.ErrPetitionClosed)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "own petition",
			pathID: "7",
			mockSetup: func(m *MockSigner) {
				m.EXPECT().Sign(gomock.Any(), int64(5), int64(7)).Return(services.ErrOwnPetition)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "internal error",
			pathID: "7",
			mockSetup: func(m *MockSigner) {
				m.EXPECT().Sign(gomock.Any(), int64(5), int64(7)).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSigner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/petitions/"+tt.pathID+"/signatures", nil)
			req = withPathID(req, "id", tt.pathID)
			if !tt.noCaller {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), 5))
			}
			rr := httptest.NewRecorder()

			NewSignHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUnsignHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		pathID       string
		noCaller     bool
		mockSetup    func(m *MockUnsigner)
		expectedCode int
	}{
		{
			name:   "success",
			pathID: "7",
			mockSetup: func(m *MockUnsigner) {
				m.EXPECT().Unsign(gomock.Any(), int64(5), int64(7)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "no token",
			pathID:       "7",
			noCaller:     true,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "petition not found",
			pathID: "99",
			mockSetup: func(m *MockUnsigner) {
				m.EXPECT().Unsign(gomock.Any(), int64(5), int64(99)).Return(services.ErrPetitionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "not signed",
			pathID: "7",
			mockSetup: func(m *MockUnsigner) {
				m.EXPECT().Unsign(gomock.Any(), int64(5), int64(7)).Return(services.ErrNotSigned)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "petition closed",
			pathID: "7",
			mockSetup: func(m *MockUnsigner) {
				m.EXPECT().Unsign(gomock.Any(), int64(5), int64(7)).Return(services.ErrPetitionClosed)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "internal error",
			pathID: "7",
			mockSetup: func(m *MockUnsigner) {
				m.EXPECT().Unsign(gomock.Any(), int64(5), int64(7)).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUnsigner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodDelete, "/petitions/"+tt.pathID+"/signatures", nil)
			req = withPathID(req, "id", tt.pathID)
			if !tt.noCaller {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), 5))
			}
			rr := httptest.NewRecorder()

			NewUnsignHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSignaturesListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	city := "Christchurch"
	signedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockSignatureLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), int64(7)).Return([]models.SignatureDB{
			{SignatoryID: 5, Name: "Jane Doe", City: &city, SignedDate: signedAt},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/petitions/7/signatures", nil)
		req = withPathID(req, "id", "7")
		rr := httptest.NewRecorder()

		NewSignaturesListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.SignatureDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "Jane Doe", resp[0].Name)
		assert.Equal(t, signedAt, resp[0].SignedDate)
	})

	t.Run("no signatures encodes an empty array", func(t *testing.T) {
		mockSvc := NewMockSignatureLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), int64(7)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/petitions/7/signatures", nil)
		req = withPathID(req, "id", "7")
		rr := httptest.NewRecorder()

		NewSignaturesListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})

	t.Run("petition not found", func(t *testing.T) {
		mockSvc := NewMockSignatureLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), int64(99)).Return(nil, services.ErrPetitionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/petitions/99/signatures", nil)
		req = withPathID(req, "id", "99")
		rr := httptest.NewRecorder()

		NewSignaturesListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
