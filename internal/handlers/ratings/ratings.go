package ratings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/dto"
	"github.com/GlebRadaev/worksite/internal/validation"
	"github.com/GlebRadaev/worksite/pkg/auth"
	"github.com/GlebRadaev/worksite/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Add(ctx context.Context, actor domain.Actor, username string, in validation.RatingInput) (float64, error)
	ListForCompany(ctx context.Context, username string) ([]domain.Rating, error)
}

type RatingHandler struct {
	ratingService Service
}

func New(ratingService Service) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// Add godoc
//
//	@Summary		Rate a company
//	@Description	One rating per applicant per company, allowed after an accepted offer
//	@Tags			Ratings
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string					true	"Company login"
//	@Param			request		body		dto.RatingAddRequestDTO	true	"Rating fields"
//	@Success		201			{object}	dto.RatingAddResponseDTO
//	@Failure		400			{object}	utils.Response	"Validation error"
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		403			{object}	utils.Response	"Not entitled to rate"
//	@Failure		404			{object}	utils.Response	"No such company"
//	@Failure		409			{object}	utils.Response	"Already rated"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/companies/{username}/ratings [post]
func (h *RatingHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.RatingAddRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	actor := auth.ActorFromContext(r.Context())
	aggregate, err := h.ratingService.Add(r.Context(), actor, chi.URLParam(r, "username"), validation.RatingInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RatingAddResponseDTO{
		CompanyRating: aggregate,
	})
}

// List godoc
//
//	@Summary		List a company's ratings
//	@Description	All ratings left for the company, newest first
//	@Tags			Ratings
//	@Produce		json
//	@Param			username	path		string	true	"Company login"
//	@Success		200			{array}		dto.RatingResponseDTO
//	@Failure		404			{object}	utils.Response	"No such company"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/companies/{username}/ratings [get]
func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.ratingService.ListForCompany(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRatings(ratings))
}
