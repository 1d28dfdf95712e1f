package service

import (
	"github.com/GlebRadaev/worksite/internal/cache"
	"github.com/GlebRadaev/worksite/internal/handlers/auth"
	"github.com/GlebRadaev/worksite/internal/handlers/offers"
	"github.com/GlebRadaev/worksite/internal/handlers/ratings"
	"github.com/GlebRadaev/worksite/internal/handlers/settings"
	"github.com/GlebRadaev/worksite/internal/handlers/vacancies"
	"github.com/GlebRadaev/worksite/internal/imaging"
	"github.com/GlebRadaev/worksite/internal/media"
	"github.com/GlebRadaev/worksite/internal/repo"
	"github.com/GlebRadaev/worksite/internal/validation"

	pkgauth "github.com/GlebRadaev/worksite/pkg/auth"

	authservice "github.com/GlebRadaev/worksite/internal/service/authservice"
	offerservice "github.com/GlebRadaev/worksite/internal/service/offerservice"
	ratingservice "github.com/GlebRadaev/worksite/internal/service/ratingservice"
	settingsservice "github.com/GlebRadaev/worksite/internal/service/settingsservice"
	vacancyservice "github.com/GlebRadaev/worksite/internal/service/vacancyservice"
)

type Services struct {
	AuthService     auth.Service
	VacancyService  vacancies.Service
	OfferService    offers.Service
	RatingService   ratings.Service
	SettingsService settings.Service
}

func New(repo *repo.Repositories, c *cache.Cache, files *media.Store, cropper imaging.CropperI) *Services {
	validator := validation.NewAPIAdapter()

	vacancyService := vacancyservice.New(repo.VacancyRepo, repo.OfferRepo, repo.UserRepo, validator)
	offerService := offerservice.New(repo.OfferRepo, repo.VacancyRepo, repo.UserRepo, files, validator)
	ratingService := ratingservice.New(repo.RatingRepo, repo.OfferRepo, repo.UserRepo, c, validator)
	settingsService := settingsservice.New(repo.SettingsRepo, c, files, cropper, validator)
	authService := authservice.New(repo.UserRepo, settingsService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		VacancyService:  vacancyService,
		OfferService:    offerService,
		RatingService:   ratingService,
		SettingsService: settingsService,
	}
}
