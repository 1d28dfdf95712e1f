package repo

import (
	"github.com/GlebRadaev/worksite/internal/pg"
	offerrepo "github.com/GlebRadaev/worksite/internal/repo/offer-repo"
	ratingrepo "github.com/GlebRadaev/worksite/internal/repo/rating-repo"
	settingsrepo "github.com/GlebRadaev/worksite/internal/repo/settings-repo"
	userrepo "github.com/GlebRadaev/worksite/internal/repo/user-repo"
	vacancyrepo "github.com/GlebRadaev/worksite/internal/repo/vacancy-repo"
)

// Repositories hold the concrete stores. Several services consume the
// same repository through their own narrower interfaces.
type Repositories struct {
	UserRepo     *userrepo.Repository
	VacancyRepo  *vacancyrepo.Repository
	OfferRepo    *offerrepo.Repository
	RatingRepo   *ratingrepo.Repository
	SettingsRepo *settingsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		VacancyRepo:  vacancyrepo.New(conn, txManager),
		OfferRepo:    offerrepo.New(conn, txManager),
		RatingRepo:   ratingrepo.New(conn, txManager),
		SettingsRepo: settingsrepo.New(conn, txManager),
	}
}
