package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/worksite/docs"
	authhandlers "github.com/GlebRadaev/worksite/internal/handlers/auth"
	offershandlers "github.com/GlebRadaev/worksite/internal/handlers/offers"
	ratingshandlers "github.com/GlebRadaev/worksite/internal/handlers/ratings"
	settingshandlers "github.com/GlebRadaev/worksite/internal/handlers/settings"
	vacancieshandlers "github.com/GlebRadaev/worksite/internal/handlers/vacancies"
	"github.com/GlebRadaev/worksite/internal/service"
	"github.com/GlebRadaev/worksite/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type VacancyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	CompanyVacancies(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListOffers(w http.ResponseWriter, r *http.Request)
}

type OfferHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	CompanyApplyed(w http.ResponseWriter, r *http.Request)
}

type RatingHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	VacancyHandler  VacancyHandler
	OfferHandler    OfferHandler
	RatingHandler   RatingHandler
	SettingsHandler SettingsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		VacancyHandler:  vacancieshandlers.New(s.VacancyService),
		OfferHandler:    offershandlers.New(s.OfferService),
		RatingHandler:   ratingshandlers.New(s.RatingService),
		SettingsHandler: settingshandlers.New(s.SettingsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})
	r.Route("/api/v1", func(r chi.Router) {
		// Public reads still see the actor when a token is present, so
		// owners keep access to their archived vacancies.
		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuthMiddleware)
			r.Get("/vacancies", h.VacancyHandler.List)
			r.Get("/vacancies/{id}", h.VacancyHandler.Get)
			r.Get("/companies/{username}/ratings", h.RatingHandler.List)
			r.Get("/companies/{username}/applyed", h.OfferHandler.CompanyApplyed)
			r.Get("/companies/{username}/vacancys", h.VacancyHandler.CompanyVacancies)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/vacancies", h.VacancyHandler.Create)
			r.Delete("/vacancies/{id}", h.VacancyHandler.Delete)
			r.Get("/vacancies/{id}/offers", h.VacancyHandler.ListOffers)

			r.Post("/offers", h.OfferHandler.Create)
			r.Get("/offers", h.OfferHandler.ListOwn)
			r.Post("/offers/{id}/withdraw", h.OfferHandler.Withdraw)
			r.Post("/offers/{id}/apply", h.OfferHandler.Apply)

			r.Post("/companies/{username}/ratings", h.RatingHandler.Add)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.SettingsHandler.Get)
				r.Post("/", h.SettingsHandler.Update)
			})
		})
	})

	return r
}
