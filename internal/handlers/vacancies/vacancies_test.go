package vacancies

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/dto"
	"github.com/GlebRadaev/worksite/internal/validation"
	"github.com/GlebRadaev/worksite/pkg/auth"
	"github.com/GlebRadaev/worksite/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var company = domain.Actor{ID: 1, Authenticated: true, IsCompany: true}

func NewMock(t *testing.T) (*VacancyHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withActor(r *http.Request, actor domain.Actor) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.ActorKey, actor))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"name":"Go developer","money":150000,"experience":"2","city":"Москва"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), company, validation.VacancyInput{
					Name:       "Go developer",
					Money:      150000,
					Experience: "2",
					City:       "Москва",
				}).Return(&domain.Vacancy{ID: 10, CompanyID: 1, Name: "Go developer"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Validation error carries the field code",
			body: `{"name":"short","money":150000,"experience":"2","city":"Москва"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), company, gomock.Any()).
					Return(nil, apperrors.NewFieldError("name", validation.CodeMinLength, "value is too short"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "value is too short",
		},
		{
			name: "Applicant is forbidden",
			body: `{"name":"Go developer","money":150000,"experience":"2","city":"Москва"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), company, gomock.Any()).
					Return(nil, apperrors.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
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

			req := httptest.NewRequest("POST", "/api/v1/vacancies", bytes.NewReader([]byte(tt.body)))
			req = withActor(req, company)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Detail)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Found",
			id:   "10",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), domain.Actor{}, 10).
					Return(&domain.Vacancy{ID: 10, Name: "Go developer"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Hidden or missing",
			id:   "11",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), domain.Actor{}, 11).
					Return(nil, apperrors.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Non-numeric id",
			id:           "abc",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("GET", "/api/v1/vacancies/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().List(gomock.Any(), domain.VacancyFilter{
		City:       "Москва",
		MoneyFrom:  50000,
		Experience: []string{"2", "3"},
		Search:     "go",
		SearchName: true,
	}).Return([]domain.Vacancy{{ID: 1}, {ID: 2}}, nil)

	req := httptest.NewRequest("GET",
		"/api/v1/vacancies?city=Москва&money_from=50000&experience=2&experience=3&search=go&search_name=true", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.VacancyResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestDeleteHandler(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Deleted",
			prepareMock: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), company, 10).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Forbidden",
			prepareMock: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), company, 10).Return(apperrors.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("DELETE", "/api/v1/vacancies/10", nil)
			req = withActor(withURLParam(req, "id", "10"), company)
			rr := httptest.NewRecorder()

			handler.Delete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListOffersHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListOffers(gomock.Any(), company, 10).
		Return([]domain.Offer{{ID: 1, VacancyID: 10}}, nil)

	req := httptest.NewRequest("GET", "/api/v1/vacancies/10/offers", nil)
	req = withActor(withURLParam(req, "id", "10"), company)
	rr := httptest.NewRecorder()

	handler.ListOffers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.OfferResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
}

func TestCompanyVacanciesHandler(t *testing.T) {
	t.Run("Company page lists archived vacancies too", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListForCompany(gomock.Any(), "acme").
			Return([]domain.Vacancy{
				{ID: 10, CompanyID: 1, Name: "Go developer"},
				{ID: 11, CompanyID: 1, Name: "Go developer", Archived: true},
			}, nil)

		req := httptest.NewRequest("GET", "/api/v1/companies/acme/vacancys", nil)
		req = withURLParam(req, "username", "acme")
		rr := httptest.NewRecorder()

		handler.CompanyVacancies(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.VacancyResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		assert.True(t, resp[1].Archived)
	})

	t.Run("Unknown company", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListForCompany(gomock.Any(), "nobody").
			Return(nil, apperrors.ErrNotFound)

		req := httptest.NewRequest("GET", "/api/v1/companies/nobody/vacancys", nil)
		req = withURLParam(req, "username", "nobody")
		rr := httptest.NewRecorder()

		handler.CompanyVacancies(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
