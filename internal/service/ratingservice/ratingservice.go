package ratingservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/worksite/internal/access"
	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/cache"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/validation"
	"go.uber.org/zap"
)

type Repo interface {
	ExistsForApplicantAndCompany(ctx context.Context, applicantID, companyID int) (bool, error)
	SaveAndRecompute(ctx context.Context, rating *domain.Rating) (float64, error)
	FindByCompanyID(ctx context.Context, companyID int) ([]domain.Rating, error)
}

type OfferRepo interface {
	HasApplyedForCompany(ctx context.Context, applicantID, companyID int) (bool, error)
}

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Service struct {
	repo      Repo
	offerRepo OfferRepo
	userRepo  UserRepo
	cache     Cache
	validator validation.Adapter
}

func New(repo Repo, offerRepo OfferRepo, userRepo UserRepo, c Cache, validator validation.Adapter) *Service {
	return &Service{
		repo:      repo,
		offerRepo: offerRepo,
		userRepo:  userRepo,
		cache:     c,
		validator: validator,
	}
}

// Add records the actor's rating of the company named by username and
// returns the refreshed aggregate. An applicant qualifies only after at
// least one accepted offer against the company's vacancies, once.
func (s *Service) Add(ctx context.Context, actor domain.Actor, username string, in validation.RatingInput) (float64, error) {
	company, err := s.userRepo.FindByLogin(ctx, username)
	if err != nil {
		return 0, err
	}
	if company == nil || !company.IsCompany {
		return 0, apperrors.ErrNotFound
	}

	var hasApplyed, alreadyRated bool
	if actor.Authenticated && !actor.IsCompany {
		hasApplyed, err = s.offerRepo.HasApplyedForCompany(ctx, actor.ID, company.ID)
		if err != nil {
			return 0, err
		}
		alreadyRated, err = s.repo.ExistsForApplicantAndCompany(ctx, actor.ID, company.ID)
		if err != nil {
			return 0, err
		}
	}
	if err := access.Rate(actor, hasApplyed, alreadyRated); err != nil {
		return 0, err
	}
	if ferr := s.validator.Rating(in); ferr != nil {
		return 0, ferr
	}

	rating := &domain.Rating{
		ApplicantID: actor.ID,
		CompanyID:   company.ID,
		Rating:      in.Rating,
		Comment:     in.Comment,
		TimeAdded:   time.Now(),
	}
	aggregate, err := s.repo.SaveAndRecompute(ctx, rating)
	if err != nil {
		zap.L().Error("can't save rating", zap.Error(err))
		return 0, err
	}

	// Stale reads are acceptable, cache failures are not fatal.
	if err := s.cache.Delete(ctx, cache.CompanyRatingsKey(company.ID)); err != nil {
		zap.L().Warn("can't invalidate ratings cache", zap.Error(err))
	}
	if err := s.cache.Delete(ctx, cache.UserSettingsKey(company.ID)); err != nil {
		zap.L().Warn("can't invalidate settings cache", zap.Error(err))
	}
	return aggregate, nil
}

// ListForCompany reads the company's ratings through the cache.
func (s *Service) ListForCompany(ctx context.Context, username string) ([]domain.Rating, error) {
	company, err := s.userRepo.FindByLogin(ctx, username)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsCompany {
		return nil, apperrors.ErrNotFound
	}

	key := cache.CompanyRatingsKey(company.ID)
	var ratings []domain.Rating
	if err := s.cache.Get(ctx, key, &ratings); err == nil {
		return ratings, nil
	}

	ratings, err = s.repo.FindByCompanyID(ctx, company.ID)
	if err != nil {
		zap.L().Error("can't list ratings", zap.Error(err))
		return nil, err
	}
	if err := s.cache.Set(ctx, key, ratings, cache.CompanyRatingsCacheTTL); err != nil {
		zap.L().Warn("can't cache ratings", zap.Error(err))
	}
	return ratings, nil
}
