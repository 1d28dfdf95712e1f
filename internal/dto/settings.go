package dto

import "github.com/GlebRadaev/worksite/internal/service/settingsservice"

type SettingsResponseDTO struct {
	UserID      int     `json:"user_id"`
	IsCompany   bool    `json:"is_company"`
	Timezone    string  `json:"timezone"`
	Photo       string  `json:"photo"`
	Description string  `json:"description,omitempty"`
	Site        string  `json:"site,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

func FromSettings(s settingsservice.Settings) SettingsResponseDTO {
	return SettingsResponseDTO{
		UserID:      s.UserID,
		IsCompany:   s.IsCompany,
		Timezone:    s.Timezone,
		Photo:       s.Photo,
		Description: s.Description,
		Site:        s.Site,
		Rating:      s.Rating,
	}
}
