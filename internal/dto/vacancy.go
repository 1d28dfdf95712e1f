package dto

import (
	"time"

	"github.com/GlebRadaev/worksite/internal/domain"
)

type VacancyCreateRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Money       int    `json:"money"`
	Experience  string `json:"experience"`
	City        string `json:"city"`
	Skills      string `json:"skills"`
}

type VacancyResponseDTO struct {
	ID          int       `json:"id"`
	CompanyID   int       `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Money       int       `json:"money"`
	Experience  string    `json:"experience"`
	City        string    `json:"city"`
	Skills      string    `json:"skills"`
	TimeAdded   time.Time `json:"time_added"`
	Archived    bool      `json:"archived"`
}

func FromVacancy(v domain.Vacancy) VacancyResponseDTO {
	return VacancyResponseDTO{
		ID:          v.ID,
		CompanyID:   v.CompanyID,
		Name:        v.Name,
		Description: v.Description,
		Money:       v.Money,
		Experience:  v.Experience,
		City:        v.City,
		Skills:      v.Skills,
		TimeAdded:   v.TimeAdded,
		Archived:    v.Archived,
	}
}

func FromVacancies(vs []domain.Vacancy) []VacancyResponseDTO {
	out := make([]VacancyResponseDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVacancy(v))
	}
	return out
}
