package dto

import (
	"time"

	"github.com/GlebRadaev/worksite/internal/domain"
)

type OfferResponseDTO struct {
	ID          int        `json:"id"`
	ApplicantID int        `json:"applicant_id"`
	VacancyID   int        `json:"vacancy_id"`
	Resume      string     `json:"resume,omitempty"`
	ResumeText  *string    `json:"resume_text,omitempty"`
	Applyed     bool       `json:"applyed"`
	Withdrawn   bool       `json:"withdrawn"`
	TimeAdded   time.Time  `json:"time_added"`
	TimeApplyed *time.Time `json:"time_applyed,omitempty"`
}

func FromOffer(o domain.Offer) OfferResponseDTO {
	return OfferResponseDTO{
		ID:          o.ID,
		ApplicantID: o.ApplicantID,
		VacancyID:   o.VacancyID,
		Resume:      o.Resume,
		ResumeText:  o.ResumeText,
		Applyed:     o.Applyed,
		Withdrawn:   o.Withdrawn,
		TimeAdded:   o.TimeAdded,
		TimeApplyed: o.TimeApplyed,
	}
}

func FromOffers(os []domain.Offer) []OfferResponseDTO {
	out := make([]OfferResponseDTO, 0, len(os))
	for _, o := range os {
		out = append(out, FromOffer(o))
	}
	return out
}
