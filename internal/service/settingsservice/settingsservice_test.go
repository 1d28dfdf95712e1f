package settingsservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/cache"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/media"
	"github.com/GlebRadaev/worksite/internal/validation"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo    *MockRepo
	cache   *MockCache
	files   *MockMediaStore
	cropper *MockCropper
}

func newService(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    NewMockRepo(ctrl),
		cache:   NewMockCache(ctrl),
		files:   NewMockMediaStore(ctrl),
		cropper: NewMockCropper(ctrl),
	}
	svc := New(m.repo, m.cache, m.files, m.cropper, validation.NewAPIAdapter())
	return svc, m
}

var (
	company   = domain.Actor{ID: 1, Authenticated: true, IsCompany: true}
	applicant = domain.Actor{ID: 2, Authenticated: true}
	anonymous = domain.Actor{}
)

func strPtr(s string) *string { return &s }

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Anonymous is unauthorized", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.Get(ctx, anonymous)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Cache hit skips the store", func(t *testing.T) {
		svc, m := newService(t)
		m.cache.EXPECT().Get(gomock.Any(), cache.UserSettingsKey(company.ID), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*Settings) = Settings{UserID: company.ID, IsCompany: true, Timezone: "Europe/Moscow"}
				return nil
			})

		settings, err := svc.Get(ctx, company)
		assert.NoError(t, err)
		assert.Equal(t, "Europe/Moscow", settings.Timezone)
	})

	t.Run("Company settings on cache miss", func(t *testing.T) {
		svc, m := newService(t)
		m.cache.EXPECT().Get(gomock.Any(), cache.UserSettingsKey(company.ID), gomock.Any()).Return(cache.ErrMiss)
		m.repo.EXPECT().GetCompany(gomock.Any(), company.ID).Return(&domain.CompanySettings{
			CompanyID:   company.ID,
			Timezone:    "Europe/Moscow",
			Logo:        "/media/logos/1/company_logo.png",
			Description: "desc",
			Site:        "https://acme.example",
			Rating:      4.25,
		}, nil)
		m.cache.EXPECT().Set(gomock.Any(), cache.UserSettingsKey(company.ID), gomock.Any(), cache.UserSettingsCacheTTL).Return(nil)

		settings, err := svc.Get(ctx, company)
		assert.NoError(t, err)
		assert.True(t, settings.IsCompany)
		assert.Equal(t, 4.25, settings.Rating)
		assert.Equal(t, "https://acme.example", settings.Site)
	})

	t.Run("Applicant settings on cache miss", func(t *testing.T) {
		svc, m := newService(t)
		m.cache.EXPECT().Get(gomock.Any(), cache.UserSettingsKey(applicant.ID), gomock.Any()).Return(cache.ErrMiss)
		m.repo.EXPECT().GetApplicant(gomock.Any(), applicant.ID).Return(&domain.ApplicantSettings{
			ApplicantID: applicant.ID,
			Timezone:    "Asia/Yekaterinburg",
			Avatar:      "/media/avatars/2/2.png",
		}, nil)
		m.cache.EXPECT().Set(gomock.Any(), cache.UserSettingsKey(applicant.ID), gomock.Any(), cache.UserSettingsCacheTTL).Return(nil)

		settings, err := svc.Get(ctx, applicant)
		assert.NoError(t, err)
		assert.False(t, settings.IsCompany)
		assert.Equal(t, "/media/avatars/2/2.png", settings.Photo)
		assert.Empty(t, settings.Site)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	longDesc := strings.Repeat("о компании ", 10)

	t.Run("Timezone only", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().UpdateTimezone(gomock.Any(), applicant.ID, false, "Europe/Samara").Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), cache.UserSettingsKey(applicant.ID)).Return(nil)

		err := svc.Update(ctx, applicant, UpdateInput{Timezone: strPtr("Europe/Samara")})
		assert.NoError(t, err)
	})

	t.Run("Unknown timezone rejected before any write", func(t *testing.T) {
		svc, _ := newService(t)
		err := svc.Update(ctx, applicant, UpdateInput{Timezone: strPtr("Mars/Olympus")})
		var ferr *apperrors.FieldError
		assert.ErrorAs(t, err, &ferr)
		assert.Equal(t, "timezone", ferr.Field)
	})

	t.Run("Applicant photo enqueues crop", func(t *testing.T) {
		svc, m := newService(t)
		m.files.EXPECT().SavePhoto(applicant.ID, false, "me.png", []byte("img")).
			Return("/media/avatars/2/2.png", nil)
		m.repo.EXPECT().UpdatePhoto(gomock.Any(), applicant.ID, false, "/media/avatars/2/2.png").Return(nil)
		m.cropper.EXPECT().EnqueueCrop("/media/avatars/2/2.png")
		m.cache.EXPECT().Delete(gomock.Any(), cache.UserSettingsKey(applicant.ID)).Return(nil)

		err := svc.Update(ctx, applicant, UpdateInput{Photo: &media.Upload{Filename: "me.png", Data: []byte("img")}})
		assert.NoError(t, err)
	})

	t.Run("Company logo is not cropped", func(t *testing.T) {
		svc, m := newService(t)
		m.files.EXPECT().SavePhoto(company.ID, true, "logo.png", []byte("img")).
			Return("/media/logos/1/company_logo.png", nil)
		m.repo.EXPECT().UpdatePhoto(gomock.Any(), company.ID, true, "/media/logos/1/company_logo.png").Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), cache.UserSettingsKey(company.ID)).Return(nil)

		err := svc.Update(ctx, company, UpdateInput{Photo: &media.Upload{Filename: "logo.png", Data: []byte("img")}})
		assert.NoError(t, err)
	})

	t.Run("Company profile fields", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().UpdateCompanyProfile(gomock.Any(), company.ID, longDesc, "https://acme.example").Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), cache.UserSettingsKey(company.ID)).Return(nil)

		err := svc.Update(ctx, company, UpdateInput{
			Description: strPtr(longDesc),
			Site:        strPtr("https://acme.example"),
		})
		assert.NoError(t, err)
	})

	t.Run("Applicant cannot touch company fields", func(t *testing.T) {
		svc, _ := newService(t)
		err := svc.Update(ctx, applicant, UpdateInput{Description: strPtr(longDesc)})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Earlier steps stay applied after a later failure", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().UpdateTimezone(gomock.Any(), company.ID, true, "Europe/Samara").Return(nil)
		m.files.EXPECT().SavePhoto(company.ID, true, "logo.png", gomock.Any()).
			Return("", errors.New("disk full"))
		m.repo.EXPECT().UpdateCompanyProfile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.cache.EXPECT().Delete(gomock.Any(), cache.UserSettingsKey(company.ID)).Return(nil)

		err := svc.Update(ctx, company, UpdateInput{
			Timezone:    strPtr("Europe/Samara"),
			Photo:       &media.Upload{Filename: "logo.png", Data: []byte("img")},
			Description: strPtr(longDesc),
		})
		assert.Error(t, err)
	})

	t.Run("No changes leaves cache alone", func(t *testing.T) {
		svc, _ := newService(t)
		err := svc.Update(ctx, applicant, UpdateInput{})
		assert.NoError(t, err)
	})

	t.Run("Anonymous is unauthorized", func(t *testing.T) {
		svc, _ := newService(t)
		err := svc.Update(ctx, anonymous, UpdateInput{Timezone: strPtr("Europe/Moscow")})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestService_CreateDefaults(t *testing.T) {
	svc, m := newService(t)
	m.repo.EXPECT().CreateDefaults(gomock.Any(), 7, true).Return(nil)

	err := svc.CreateDefaults(context.Background(), 7, true)
	assert.NoError(t, err)
}
