package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/worksite/internal/apperrors"
)

// Response is the error payload shape: {"detail": "...", "code": "..."}.
type Response struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func RespondWithError(w http.ResponseWriter, status int, detail string) {
	RespondWithJSON(w, status, Response{Detail: detail})
}

// RespondWithAppError maps the error taxonomy onto HTTP statuses.
// Field errors become 400 with the machine code; unknown errors are 500.
func RespondWithAppError(w http.ResponseWriter, err error) {
	var fieldErr *apperrors.FieldError
	switch {
	case errors.As(err, &fieldErr):
		RespondWithJSON(w, http.StatusBadRequest, Response{Detail: fieldErr.Message, Code: fieldErr.Code})
	case errors.Is(err, apperrors.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, apperrors.ErrForbidden):
		RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, apperrors.ErrUnauthorized):
		RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, apperrors.ErrConflict):
		RespondWithError(w, http.StatusConflict, "Conflict")
	default:
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
