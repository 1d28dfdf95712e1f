package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Company registration",
			body: `{"login":"acme","password":"password123","is_company":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "acme", "password123", true).
					Return(&domain.User{ID: 1, Login: "acme", IsCompany: true}, nil)
				service.EXPECT().GenerateToken(1, true).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Applicant registration",
			body: `{"login":"worker","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "worker", "password123", false).
					Return(&domain.User{ID: 2, Login: "worker"}, nil)
				service.EXPECT().GenerateToken(2, false).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Login already taken",
			body: `{"login":"acme","password":"password123","is_company":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "acme", "password123", true).
					Return(nil, apperrors.ErrConflict)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Conflict",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing credentials",
			body:          `{"login":"","password":""}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Login and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Detail)
			} else {
				assert.Contains(t, rr.Header().Get("Authorization"), "Bearer ")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"worker","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "worker", "password123").
					Return(&domain.User{ID: 2, Login: "worker"}, nil)
				service.EXPECT().GenerateToken(2, false).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"worker","password":"wrong"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "worker", "wrong").
					Return(nil, apperrors.ErrUnauthorized)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Detail)
			}
		})
	}
}
