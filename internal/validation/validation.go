// Package validation is the field-level gate in front of every mutating
// write. One rule set, two adapters: the form adapter speaks the language
// of the HTML surface, the API adapter answers with terse machine
// messages. Callers pick one at construction time.
package validation

import (
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/GlebRadaev/worksite/internal/apperrors"
)

type VacancyInput struct {
	Name        string
	Description string
	Money       int
	Experience  string
	City        string
	Skills      string
}

type OfferInput struct {
	HasResumeFile bool
	ResumeText    string
}

type RatingInput struct {
	Rating  int
	Comment string
}

type CompanyProfileInput struct {
	Description string
	Site        string
}

type Adapter interface {
	Vacancy(in VacancyInput) *apperrors.FieldError
	Offer(in OfferInput) *apperrors.FieldError
	Rating(in RatingInput) *apperrors.FieldError
	CompanyProfile(in CompanyProfileInput) *apperrors.FieldError
	Timezone(name string) *apperrors.FieldError
}

const (
	CodeRequired          = "required"
	CodeMinLength         = "min_length"
	CodeMaxLength         = "max_length"
	CodeOutOfRange        = "out_of_range"
	CodeInvalidChoice     = "invalid_choice"
	CodeMutuallyExclusive = "mutually_exclusive"
	CodeInvalidURL        = "invalid_url"
	CodeInvalidTimezone   = "invalid_timezone"
)

var experienceChoices = map[string]struct{}{
	"0": {}, "1": {}, "2": {}, "3": {}, "4": {},
}

type violation struct {
	field string
	code  string
}

// checkVacancy returns the first violated field, form/serializer style.
func checkVacancy(in VacancyInput) *violation {
	if n := utf8.RuneCountInString(in.Name); n < 8 || n > 100 {
		if n < 8 {
			return &violation{"name", CodeMinLength}
		}
		return &violation{"name", CodeMaxLength}
	}
	// Description is optional, but once present it must be substantial.
	if d := utf8.RuneCountInString(in.Description); d != 0 && (d < 64 || d > 2048) {
		if d < 64 {
			return &violation{"description", CodeMinLength}
		}
		return &violation{"description", CodeMaxLength}
	}
	if in.Money < 100 || in.Money > 1000000 {
		return &violation{"money", CodeOutOfRange}
	}
	if _, ok := experienceChoices[in.Experience]; !ok {
		return &violation{"experience", CodeInvalidChoice}
	}
	if in.City == AnyCity || !IsKnownCity(in.City) {
		return &violation{"city", CodeInvalidChoice}
	}
	if utf8.RuneCountInString(in.Skills) > 512 {
		return &violation{"skills", CodeMaxLength}
	}
	return nil
}

func checkOffer(in OfferInput) *violation {
	hasText := in.ResumeText != ""
	if in.HasResumeFile == hasText {
		if !hasText {
			return &violation{"resume", CodeRequired}
		}
		return &violation{"resume", CodeMutuallyExclusive}
	}
	if hasText {
		if n := utf8.RuneCountInString(in.ResumeText); n < 64 || n > 2048 {
			if n < 64 {
				return &violation{"resume_text", CodeMinLength}
			}
			return &violation{"resume_text", CodeMaxLength}
		}
	}
	return nil
}

func checkRating(in RatingInput) *violation {
	if in.Rating < 1 || in.Rating > 5 {
		return &violation{"rating", CodeOutOfRange}
	}
	if n := utf8.RuneCountInString(in.Comment); n < 64 || n > 2048 {
		if n < 64 {
			return &violation{"comment", CodeMinLength}
		}
		return &violation{"comment", CodeMaxLength}
	}
	return nil
}

func checkCompanyProfile(in CompanyProfileInput) *violation {
	if in.Description != "" {
		if n := utf8.RuneCountInString(in.Description); n < 64 || n > 5000 {
			if n < 64 {
				return &violation{"company_description", CodeMinLength}
			}
			return &violation{"company_description", CodeMaxLength}
		}
	}
	if in.Site != "" {
		u, err := url.Parse(in.Site)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &violation{"company_site", CodeInvalidURL}
		}
	}
	return nil
}

func checkTimezone(name string) *violation {
	if name == "" || name == "Local" {
		return &violation{"timezone", CodeInvalidTimezone}
	}
	if _, err := time.LoadLocation(name); err != nil {
		return &violation{"timezone", CodeInvalidTimezone}
	}
	return nil
}

type adapter struct {
	messages map[string]string
}

func (a *adapter) wrap(v *violation) *apperrors.FieldError {
	if v == nil {
		return nil
	}
	msg, ok := a.messages[v.code]
	if !ok {
		msg = v.code
	}
	return apperrors.NewFieldError(v.field, v.code, msg)
}

func (a *adapter) Vacancy(in VacancyInput) *apperrors.FieldError {
	return a.wrap(checkVacancy(in))
}

func (a *adapter) Offer(in OfferInput) *apperrors.FieldError {
	return a.wrap(checkOffer(in))
}

func (a *adapter) Rating(in RatingInput) *apperrors.FieldError {
	return a.wrap(checkRating(in))
}

func (a *adapter) CompanyProfile(in CompanyProfileInput) *apperrors.FieldError {
	return a.wrap(checkCompanyProfile(in))
}

func (a *adapter) Timezone(name string) *apperrors.FieldError {
	return a.wrap(checkTimezone(name))
}

// NewFormAdapter returns the adapter used behind the HTML form surface.
func NewFormAdapter() Adapter {
	return &adapter{messages: map[string]string{
		CodeRequired:          "Обязательное поле не заполнено",
		CodeMinLength:         "Значение слишком короткое",
		CodeMaxLength:         "Значение слишком длинное",
		CodeOutOfRange:        "Значение вне допустимого диапазона",
		CodeInvalidChoice:     "Недопустимый вариант",
		CodeMutuallyExclusive: "Укажите либо файл резюме, либо текст, но не оба",
		CodeInvalidURL:        "Некорректный адрес сайта",
		CodeInvalidTimezone:   "Неизвестная временная зона",
	}}
}

// NewAPIAdapter returns the adapter used behind the JSON API surface.
func NewAPIAdapter() Adapter {
	return &adapter{messages: map[string]string{
		CodeRequired:          "field is required",
		CodeMinLength:         "value is too short",
		CodeMaxLength:         "value is too long",
		CodeOutOfRange:        "value is out of range",
		CodeInvalidChoice:     "invalid choice",
		CodeMutuallyExclusive: "provide either a resume file or resume text, not both",
		CodeInvalidURL:        "invalid url",
		CodeInvalidTimezone:   "unknown timezone",
	}}
}
