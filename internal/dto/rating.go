package dto

import (
	"time"

	"github.com/GlebRadaev/worksite/internal/domain"
)

type RatingAddRequestDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type RatingAddResponseDTO struct {
	CompanyRating float64 `json:"company_rating"`
}

type RatingResponseDTO struct {
	ID          int       `json:"id"`
	ApplicantID int       `json:"applicant_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	TimeAdded   time.Time `json:"time_added"`
}

func FromRating(r domain.Rating) RatingResponseDTO {
	return RatingResponseDTO{
		ID:          r.ID,
		ApplicantID: r.ApplicantID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		TimeAdded:   r.TimeAdded,
	}
}

func FromRatings(rs []domain.Rating) []RatingResponseDTO {
	out := make([]RatingResponseDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRating(r))
	}
	return out
}
