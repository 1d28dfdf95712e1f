package offers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/dto"
	"github.com/GlebRadaev/worksite/internal/media"
	"github.com/GlebRadaev/worksite/pkg/auth"
	"github.com/GlebRadaev/worksite/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const maxResumeSize = 10 << 20

type Service interface {
	Create(ctx context.Context, actor domain.Actor, vacancyID int, resume *media.Upload, resumeText string) (*domain.Offer, error)
	Withdraw(ctx context.Context, actor domain.Actor, offerID int) error
	Apply(ctx context.Context, actor domain.Actor, offerID int) error
	ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Offer, error)
	CompanyApplyed(ctx context.Context, username string) ([]domain.Offer, error)
}

type OfferHandler struct {
	offerService Service
}

func New(offerService Service) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// Create godoc
//
//	@Summary		Submit an offer
//	@Description	Apply to a vacancy with a resume file or resume text, exactly one of the two
//	@Tags			Offers
//	@Accept			mpfd
//	@Produce		json
//	@Param			vacancy_id	formData	int		true	"Vacancy ID"
//	@Param			resume		formData	file	false	"Resume file"
//	@Param			resume_text	formData	string	false	"Resume text"
//	@Success		201			{object}	dto.OfferResponseDTO
//	@Failure		400			{object}	utils.Response	"Validation error"
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		403			{object}	utils.Response	"Companies and repeat applicants cannot offer"
//	@Failure		404			{object}	utils.Response	"Vacancy not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/offers [post]
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	vacancyID, err := strconv.Atoi(r.FormValue("vacancy_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vacancy_id")
		return
	}

	var resume *media.Upload
	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Can't read resume file")
			return
		}
		resume = &media.Upload{Filename: header.Filename, Data: data}
	}

	actor := auth.ActorFromContext(r.Context())
	offer, err := h.offerService.Create(r.Context(), actor, vacancyID, resume, r.FormValue("resume_text"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromOffer(*offer))
}

// Withdraw godoc
//
//	@Summary		Withdraw an offer
//	@Description	Withdraw an own pending offer; terminal offers stay as they are
//	@Tags			Offers
//	@Param			id	path	int	true	"Offer ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Not the owner or offer is terminal"
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/offers/{id}/withdraw [post]
func (h *OfferHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Offer not found")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	if err := h.offerService.Withdraw(r.Context(), actor, id); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Apply godoc
//
//	@Summary		Accept an offer
//	@Description	Accept a pending offer on an owned vacancy; the vacancy is archived at the same time
//	@Tags			Offers
//	@Param			id	path	int	true	"Offer ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Not the vacancy owner"
//	@Failure		404	{object}	utils.Response	"Offer or vacancy not available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/offers/{id}/apply [post]
func (h *OfferHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Offer not found")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	if err := h.offerService.Apply(r.Context(), actor, id); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOwn godoc
//
//	@Summary		List own offers
//	@Description	All offers of the authenticated applicant, newest first
//	@Tags			Offers
//	@Produce		json
//	@Success		200	{array}		dto.OfferResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Companies have no offers"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/offers [get]
func (h *OfferHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	offers, err := h.offerService.ListOwn(r.Context(), actor)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromOffers(offers))
}

// CompanyApplyed godoc
//
//	@Summary		List a company's accepted offers
//	@Description	Accepted offers across the company's vacancies, by company login
//	@Tags			Offers
//	@Produce		json
//	@Param			username	path		string	true	"Company login"
//	@Success		200			{array}		dto.OfferResponseDTO
//	@Failure		404			{object}	utils.Response	"No such company"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/companies/{username}/applyed [get]
func (h *OfferHandler) CompanyApplyed(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	offers, err := h.offerService.CompanyApplyed(r.Context(), username)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromOffers(offers))
}
