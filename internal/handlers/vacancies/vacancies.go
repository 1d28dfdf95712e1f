package vacancies

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/dto"
	"github.com/GlebRadaev/worksite/internal/validation"
	"github.com/GlebRadaev/worksite/pkg/auth"
	"github.com/GlebRadaev/worksite/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, in validation.VacancyInput) (*domain.Vacancy, error)
	Get(ctx context.Context, actor domain.Actor, id int) (*domain.Vacancy, error)
	List(ctx context.Context, filter domain.VacancyFilter) ([]domain.Vacancy, error)
	ListForCompany(ctx context.Context, username string) ([]domain.Vacancy, error)
	Delete(ctx context.Context, actor domain.Actor, id int) error
	ListOffers(ctx context.Context, actor domain.Actor, vacancyID int) ([]domain.Offer, error)
}

type VacancyHandler struct {
	vacancyService Service
}

func New(vacancyService Service) *VacancyHandler {
	return &VacancyHandler{
		vacancyService: vacancyService,
	}
}

// Create godoc
//
//	@Summary		Create a vacancy
//	@Description	Post a new vacancy on behalf of the authenticated company
//	@Tags			Vacancies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VacancyCreateRequestDTO	true	"Vacancy fields"
//	@Success		201		{object}	dto.VacancyResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation error"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Applicants cannot post vacancies"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/vacancies [post]
func (h *VacancyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.VacancyCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	vacancy, err := h.vacancyService.Create(r.Context(), actor, validation.VacancyInput{
		Name:        req.Name,
		Description: req.Description,
		Money:       req.Money,
		Experience:  req.Experience,
		City:        req.City,
		Skills:      req.Skills,
	})
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromVacancy(*vacancy))
}

// Get godoc
//
//	@Summary		Get a vacancy
//	@Description	Vacancy detail; archived vacancies are visible only to the related parties
//	@Tags			Vacancies
//	@Produce		json
//	@Param			id	path		int	true	"Vacancy ID"
//	@Success		200	{object}	dto.VacancyResponseDTO
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/vacancies/{id} [get]
func (h *VacancyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Vacancy not found")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	vacancy, err := h.vacancyService.Get(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromVacancy(*vacancy))
}

// List godoc
//
//	@Summary		List vacancies
//	@Description	Live vacancies filtered by city, salary range, experience and text search
//	@Tags			Vacancies
//	@Produce		json
//	@Param			city		query		string	false	"City name"
//	@Param			money_from	query		int		false	"Minimal salary"
//	@Param			money_to	query		int		false	"Maximal salary"
//	@Param			experience	query		[]string	false	"Experience levels 0-4"
//	@Param			search		query		string	false	"Search phrase"
//	@Param			search_name	query		bool	false	"Match the phrase against names"
//	@Param			search_desc	query		bool	false	"Match the phrase against descriptions"
//	@Success		200			{array}		dto.VacancyResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/vacancies [get]
func (h *VacancyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.VacancyFilter{
		City:       q.Get("city"),
		Search:     q.Get("search"),
		SearchName: q.Get("search_name") == "true",
		SearchDesc: q.Get("search_desc") == "true",
		Experience: q["experience"],
	}
	filter.MoneyFrom, _ = strconv.Atoi(q.Get("money_from"))
	filter.MoneyTo, _ = strconv.Atoi(q.Get("money_to"))

	vacancies, err := h.vacancyService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromVacancies(vacancies))
}

// CompanyVacancies godoc
//
//	@Summary		List a company's vacancies
//	@Description	Every vacancy the company posted, archived ones included
//	@Tags			Vacancies
//	@Produce		json
//	@Param			username	path		string	true	"Company login"
//	@Success		200			{array}		dto.VacancyResponseDTO
//	@Failure		404			{object}	utils.Response	"Not a company"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/companies/{username}/vacancys [get]
func (h *VacancyHandler) CompanyVacancies(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	vacancies, err := h.vacancyService.ListForCompany(r.Context(), username)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromVacancies(vacancies))
}

// Delete godoc
//
//	@Summary		Delete a vacancy
//	@Description	Soft-delete an owned live vacancy
//	@Tags			Vacancies
//	@Param			id	path	int	true	"Vacancy ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/vacancies/{id} [delete]
func (h *VacancyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Vacancy not found")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	if err := h.vacancyService.Delete(r.Context(), actor, id); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOffers godoc
//
//	@Summary		List a vacancy's offers
//	@Description	Pending offers on an owned live vacancy
//	@Tags			Vacancies
//	@Produce		json
//	@Param			id	path		int	true	"Vacancy ID"
//	@Success		200	{array}		dto.OfferResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/vacancies/{id}/offers [get]
func (h *VacancyHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Vacancy not found")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	offers, err := h.vacancyService.ListOffers(r.Context(), actor, id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromOffers(offers))
}
