package settingsservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/cache"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/media"
	"github.com/GlebRadaev/worksite/internal/validation"
	"go.uber.org/zap"
)

type Repo interface {
	GetCompany(ctx context.Context, companyID int) (*domain.CompanySettings, error)
	GetApplicant(ctx context.Context, applicantID int) (*domain.ApplicantSettings, error)
	CreateDefaults(ctx context.Context, userID int, isCompany bool) error
	UpdateTimezone(ctx context.Context, userID int, isCompany bool, timezone string) error
	UpdatePhoto(ctx context.Context, userID int, isCompany bool, path string) error
	UpdateCompanyProfile(ctx context.Context, companyID int, description, site string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type MediaStore interface {
	SavePhoto(userID int, isCompany bool, filename string, data []byte) (string, error)
}

type Cropper interface {
	EnqueueCrop(path string)
}

// Settings is the role-merged view handed to the surface layer. Company
// fields stay zero for applicants.
type Settings struct {
	UserID      int     `json:"user_id"`
	IsCompany   bool    `json:"is_company"`
	Timezone    string  `json:"timezone"`
	Photo       string  `json:"photo"`
	Description string  `json:"description,omitempty"`
	Site        string  `json:"site,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

// UpdateInput carries the optional settings changes. Nil means "leave as
// is" for every field.
type UpdateInput struct {
	Timezone    *string
	Photo       *media.Upload
	Description *string
	Site        *string
}

type Service struct {
	repo      Repo
	cache     Cache
	files     MediaStore
	cropper   Cropper
	validator validation.Adapter
}

func New(repo Repo, c Cache, files MediaStore, cropper Cropper, validator validation.Adapter) *Service {
	return &Service{
		repo:      repo,
		cache:     c,
		files:     files,
		cropper:   cropper,
		validator: validator,
	}
}

func (s *Service) Get(ctx context.Context, actor domain.Actor) (*Settings, error) {
	if !actor.Authenticated {
		return nil, apperrors.ErrUnauthorized
	}

	key := cache.UserSettingsKey(actor.ID)
	var cached Settings
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	settings, err := s.load(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, settings, cache.UserSettingsCacheTTL); err != nil {
		zap.L().Warn("can't cache settings", zap.Error(err))
	}
	return settings, nil
}

func (s *Service) load(ctx context.Context, actor domain.Actor) (*Settings, error) {
	if actor.IsCompany {
		cs, err := s.repo.GetCompany(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if cs == nil {
			return nil, apperrors.ErrNotFound
		}
		return &Settings{
			UserID:      actor.ID,
			IsCompany:   true,
			Timezone:    cs.Timezone,
			Photo:       cs.Logo,
			Description: cs.Description,
			Site:        cs.Site,
			Rating:      cs.Rating,
		}, nil
	}

	as, err := s.repo.GetApplicant(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if as == nil {
		return nil, apperrors.ErrNotFound
	}
	return &Settings{
		UserID:   actor.ID,
		Timezone: as.Timezone,
		Photo:    as.Avatar,
	}, nil
}

// Update applies the requested changes in a fixed order: timezone, then
// photo, then the company profile. Each step commits on its own, so a
// failure midway leaves the earlier steps applied. The first failure
// stops the sequence and is reported to the caller.
func (s *Service) Update(ctx context.Context, actor domain.Actor, in UpdateInput) error {
	if !actor.Authenticated {
		return apperrors.ErrUnauthorized
	}

	changed := false
	defer func() {
		if !changed {
			return
		}
		if err := s.cache.Delete(ctx, cache.UserSettingsKey(actor.ID)); err != nil {
			zap.L().Warn("can't invalidate settings cache", zap.Error(err))
		}
	}()

	if in.Timezone != nil {
		if ferr := s.validator.Timezone(*in.Timezone); ferr != nil {
			return ferr
		}
		if err := s.repo.UpdateTimezone(ctx, actor.ID, actor.IsCompany, *in.Timezone); err != nil {
			zap.L().Error("can't update timezone", zap.Error(err))
			return err
		}
		changed = true
	}

	if in.Photo != nil {
		path, err := s.files.SavePhoto(actor.ID, actor.IsCompany, in.Photo.Filename, in.Photo.Data)
		if err != nil {
			zap.L().Error("can't store photo", zap.Error(err))
			return err
		}
		if err := s.repo.UpdatePhoto(ctx, actor.ID, actor.IsCompany, path); err != nil {
			zap.L().Error("can't update photo", zap.Error(err))
			return err
		}
		if !actor.IsCompany {
			s.cropper.EnqueueCrop(path)
		}
		changed = true
	}

	if in.Description != nil || in.Site != nil {
		// Company profile fields do not exist for applicants.
		if !actor.IsCompany {
			return apperrors.ErrNotFound
		}
		profile := validation.CompanyProfileInput{}
		if in.Description != nil {
			profile.Description = *in.Description
		}
		if in.Site != nil {
			profile.Site = *in.Site
		}
		if ferr := s.validator.CompanyProfile(profile); ferr != nil {
			return ferr
		}
		if err := s.repo.UpdateCompanyProfile(ctx, actor.ID, profile.Description, profile.Site); err != nil {
			zap.L().Error("can't update company profile", zap.Error(err))
			return err
		}
		changed = true
	}

	return nil
}

// CreateDefaults provisions the role's settings row, called once at
// registration.
func (s *Service) CreateDefaults(ctx context.Context, userID int, isCompany bool) error {
	return s.repo.CreateDefaults(ctx, userID, isCompany)
}
