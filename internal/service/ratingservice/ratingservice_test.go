package ratingservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/cache"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/validation"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo      *MockRepo
	offerRepo *MockOfferRepo
	userRepo  *MockUserRepo
	cache     *MockCache
}

func newService(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:      NewMockRepo(ctrl),
		offerRepo: NewMockOfferRepo(ctrl),
		userRepo:  NewMockUserRepo(ctrl),
		cache:     NewMockCache(ctrl),
	}
	svc := New(m.repo, m.offerRepo, m.userRepo, m.cache, validation.NewAPIAdapter())
	return svc, m
}

var (
	companyUser = &domain.User{ID: 1, Login: "acme", IsCompany: true}
	companyActr = domain.Actor{ID: 1, Authenticated: true, IsCompany: true}
	applicant   = domain.Actor{ID: 2, Authenticated: true}
)

func validInput() validation.RatingInput {
	return validation.RatingInput{Rating: 4, Comment: strings.Repeat("хорошо ", 12)}
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		actor       domain.Actor
		in          validation.RatingInput
		prepareMock func(m mocks)
		wantErr     error
		wantAgg     float64
	}{
		{
			name:  "Hired applicant rates once",
			actor: applicant,
			in:    validInput(),
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(companyUser, nil)
				m.offerRepo.EXPECT().HasApplyedForCompany(gomock.Any(), applicant.ID, 1).Return(true, nil)
				m.repo.EXPECT().ExistsForApplicantAndCompany(gomock.Any(), applicant.ID, 1).Return(false, nil)
				m.repo.EXPECT().SaveAndRecompute(gomock.Any(), gomock.Any()).Return(4.25, nil)
				m.cache.EXPECT().Delete(gomock.Any(), cache.CompanyRatingsKey(1)).Return(nil)
				m.cache.EXPECT().Delete(gomock.Any(), cache.UserSettingsKey(1)).Return(nil)
			},
			wantAgg: 4.25,
		},
		{
			name:  "Unknown company",
			actor: applicant,
			in:    validInput(),
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(nil, nil)
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:  "No accepted offer",
			actor: applicant,
			in:    validInput(),
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(companyUser, nil)
				m.offerRepo.EXPECT().HasApplyedForCompany(gomock.Any(), applicant.ID, 1).Return(false, nil)
				m.repo.EXPECT().ExistsForApplicantAndCompany(gomock.Any(), applicant.ID, 1).Return(false, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:  "Second rating of same company",
			actor: applicant,
			in:    validInput(),
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(companyUser, nil)
				m.offerRepo.EXPECT().HasApplyedForCompany(gomock.Any(), applicant.ID, 1).Return(true, nil)
				m.repo.EXPECT().ExistsForApplicantAndCompany(gomock.Any(), applicant.ID, 1).Return(true, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:  "Company cannot rate",
			actor: companyActr,
			in:    validInput(),
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(companyUser, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.prepareMock(m)

			aggregate, err := svc.Add(ctx, tt.actor, "acme", tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantAgg, aggregate)
		})
	}

	t.Run("Rating out of range", func(t *testing.T) {
		svc, m := newService(t)
		m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(companyUser, nil)
		m.offerRepo.EXPECT().HasApplyedForCompany(gomock.Any(), applicant.ID, 1).Return(true, nil)
		m.repo.EXPECT().ExistsForApplicantAndCompany(gomock.Any(), applicant.ID, 1).Return(false, nil)

		in := validInput()
		in.Rating = 6
		_, err := svc.Add(ctx, applicant, "acme", in)
		var ferr *apperrors.FieldError
		assert.ErrorAs(t, err, &ferr)
		assert.Equal(t, "rating", ferr.Field)
	})

	t.Run("Cache invalidation failure is not fatal", func(t *testing.T) {
		svc, m := newService(t)
		m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(companyUser, nil)
		m.offerRepo.EXPECT().HasApplyedForCompany(gomock.Any(), applicant.ID, 1).Return(true, nil)
		m.repo.EXPECT().ExistsForApplicantAndCompany(gomock.Any(), applicant.ID, 1).Return(false, nil)
		m.repo.EXPECT().SaveAndRecompute(gomock.Any(), gomock.Any()).Return(5.0, nil)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(2)

		aggregate, err := svc.Add(ctx, applicant, "acme", validInput())
		assert.NoError(t, err)
		assert.Equal(t, 5.0, aggregate)
	})
}

func TestService_ListForCompany(t *testing.T) {
	ctx := context.Background()
	stored := []domain.Rating{{ID: 1, CompanyID: 1, Rating: 5}}

	t.Run("Cache hit skips the store", func(t *testing.T) {
		svc, m := newService(t)
		m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(companyUser, nil)
		m.cache.EXPECT().Get(gomock.Any(), cache.CompanyRatingsKey(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*[]domain.Rating) = stored
				return nil
			})

		ratings, err := svc.ListForCompany(ctx, "acme")
		assert.NoError(t, err)
		assert.Equal(t, stored, ratings)
	})

	t.Run("Cache miss reads store and fills cache", func(t *testing.T) {
		svc, m := newService(t)
		m.userRepo.EXPECT().FindByLogin(gomock.Any(), "acme").Return(companyUser, nil)
		m.cache.EXPECT().Get(gomock.Any(), cache.CompanyRatingsKey(1), gomock.Any()).Return(cache.ErrMiss)
		m.repo.EXPECT().FindByCompanyID(gomock.Any(), 1).Return(stored, nil)
		m.cache.EXPECT().Set(gomock.Any(), cache.CompanyRatingsKey(1), stored, cache.CompanyRatingsCacheTTL).Return(nil)

		ratings, err := svc.ListForCompany(ctx, "acme")
		assert.NoError(t, err)
		assert.Equal(t, stored, ratings)
	})

	t.Run("Applicant login is not a company", func(t *testing.T) {
		svc, m := newService(t)
		m.userRepo.EXPECT().FindByLogin(gomock.Any(), "worker").
			Return(&domain.User{ID: 2, Login: "worker"}, nil)

		_, err := svc.ListForCompany(ctx, "worker")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
