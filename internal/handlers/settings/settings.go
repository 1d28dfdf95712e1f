package settings

import (
	"context"
	"io"
	"net/http"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/dto"
	"github.com/GlebRadaev/worksite/internal/media"
	"github.com/GlebRadaev/worksite/internal/service/settingsservice"
	"github.com/GlebRadaev/worksite/pkg/auth"
	"github.com/GlebRadaev/worksite/pkg/utils"
)

const maxPhotoSize = 10 << 20

type Service interface {
	Get(ctx context.Context, actor domain.Actor) (*settingsservice.Settings, error)
	Update(ctx context.Context, actor domain.Actor, in settingsservice.UpdateInput) error
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get godoc
//
//	@Summary		Get own settings
//	@Description	The authenticated user's settings, served through the cache
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	dto.SettingsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	settings, err := h.settingsService.Get(r.Context(), actor)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSettings(*settings))
}

// Update godoc
//
//	@Summary		Update own settings
//	@Description	Timezone, photo and company profile fields, applied in that order; each part commits on its own
//	@Tags			Settings
//	@Accept			mpfd
//	@Param			timezone			formData	string	false	"IANA timezone name"
//	@Param			photo				formData	file	false	"Avatar or company logo"
//	@Param			company_description	formData	string	false	"Company description"
//	@Param			company_site		formData	string	false	"Company site URL"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Validation error"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Company fields on an applicant account"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/v1/settings [post]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var in settingsservice.UpdateInput
	if v, ok := formValue(r, "timezone"); ok {
		in.Timezone = &v
	}
	if v, ok := formValue(r, "company_description"); ok {
		in.Description = &v
	}
	if v, ok := formValue(r, "company_site"); ok {
		in.Site = &v
	}
	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Can't read photo")
			return
		}
		in.Photo = &media.Upload{Filename: header.Filename, Data: data}
	}

	actor := auth.ActorFromContext(r.Context())
	if err := h.settingsService.Update(r.Context(), actor, in); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// formValue distinguishes an absent field from an empty one.
func formValue(r *http.Request, name string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
