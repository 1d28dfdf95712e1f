package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var longText = strings.Repeat("о", 64)

func validVacancy() VacancyInput {
	return VacancyInput{
		Name:        "Go developer",
		Description: longText,
		Money:       50000,
		Experience:  "2",
		City:        "Москва",
		Skills:      "go, postgres",
	}
}

func TestVacancy(t *testing.T) {
	api := NewAPIAdapter()

	tests := []struct {
		name          string
		mutate        func(in *VacancyInput)
		expectedField string
		expectedCode  string
	}{
		{name: "Valid vacancy", mutate: func(in *VacancyInput) {}},
		{name: "Empty description is allowed", mutate: func(in *VacancyInput) { in.Description = "" }},
		{name: "Short name", mutate: func(in *VacancyInput) { in.Name = "short" }, expectedField: "name", expectedCode: CodeMinLength},
		{name: "Long name", mutate: func(in *VacancyInput) { in.Name = strings.Repeat("a", 101) }, expectedField: "name", expectedCode: CodeMaxLength},
		{name: "Short description", mutate: func(in *VacancyInput) { in.Description = "too short" }, expectedField: "description", expectedCode: CodeMinLength},
		{name: "Money below range", mutate: func(in *VacancyInput) { in.Money = 99 }, expectedField: "money", expectedCode: CodeOutOfRange},
		{name: "Money above range", mutate: func(in *VacancyInput) { in.Money = 1000001 }, expectedField: "money", expectedCode: CodeOutOfRange},
		{name: "Unknown experience", mutate: func(in *VacancyInput) { in.Experience = "7" }, expectedField: "experience", expectedCode: CodeInvalidChoice},
		{name: "Unknown city", mutate: func(in *VacancyInput) { in.City = "Атлантида" }, expectedField: "city", expectedCode: CodeInvalidChoice},
		{name: "Sentinel city rejected", mutate: func(in *VacancyInput) { in.City = AnyCity }, expectedField: "city", expectedCode: CodeInvalidChoice},
		{name: "Skills too long", mutate: func(in *VacancyInput) { in.Skills = strings.Repeat("a", 513) }, expectedField: "skills", expectedCode: CodeMaxLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validVacancy()
			tt.mutate(&in)
			err := api.Vacancy(in)
			if tt.expectedField == "" {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tt.expectedField, err.Field)
				assert.Equal(t, tt.expectedCode, err.Code)
			}
		})
	}
}

func TestOffer(t *testing.T) {
	api := NewAPIAdapter()

	tests := []struct {
		name          string
		in            OfferInput
		expectedField string
		expectedCode  string
	}{
		{name: "Resume file only", in: OfferInput{HasResumeFile: true}},
		{name: "Resume text only", in: OfferInput{ResumeText: longText}},
		{name: "Neither resume nor text", in: OfferInput{}, expectedField: "resume", expectedCode: CodeRequired},
		{name: "Both resume and text", in: OfferInput{HasResumeFile: true, ResumeText: longText}, expectedField: "resume", expectedCode: CodeMutuallyExclusive},
		{name: "Resume text too short", in: OfferInput{ResumeText: "short"}, expectedField: "resume_text", expectedCode: CodeMinLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := api.Offer(tt.in)
			if tt.expectedField == "" {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tt.expectedField, err.Field)
				assert.Equal(t, tt.expectedCode, err.Code)
			}
		})
	}
}

func TestRating(t *testing.T) {
	api := NewAPIAdapter()

	tests := []struct {
		name          string
		in            RatingInput
		expectedField string
	}{
		{name: "Valid rating", in: RatingInput{Rating: 5, Comment: longText}},
		{name: "Score too low", in: RatingInput{Rating: 0, Comment: longText}, expectedField: "rating"},
		{name: "Score too high", in: RatingInput{Rating: 6, Comment: longText}, expectedField: "rating"},
		{name: "Comment too short", in: RatingInput{Rating: 3, Comment: "meh"}, expectedField: "comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := api.Rating(tt.in)
			if tt.expectedField == "" {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tt.expectedField, err.Field)
			}
		})
	}
}

func TestCompanyProfile(t *testing.T) {
	api := NewAPIAdapter()

	tests := []struct {
		name          string
		in            CompanyProfileInput
		expectedField string
	}{
		{name: "Valid profile", in: CompanyProfileInput{Description: longText, Site: "https://example.com"}},
		{name: "Empty fields are allowed", in: CompanyProfileInput{}},
		{name: "Short description", in: CompanyProfileInput{Description: "short"}, expectedField: "company_description"},
		{name: "Relative site url", in: CompanyProfileInput{Site: "example.com"}, expectedField: "company_site"},
		{name: "Non-http scheme", in: CompanyProfileInput{Site: "ftp://example.com"}, expectedField: "company_site"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := api.CompanyProfile(tt.in)
			if tt.expectedField == "" {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
				assert.Equal(t, tt.expectedField, err.Field)
			}
		})
	}
}

func TestTimezone(t *testing.T) {
	api := NewAPIAdapter()

	assert.Nil(t, api.Timezone("Europe/Moscow"))
	assert.Nil(t, api.Timezone("UTC"))

	for _, name := range []string{"", "Local", "Mars/Olympus"} {
		err := api.Timezone(name)
		assert.NotNil(t, err)
		assert.Equal(t, CodeInvalidTimezone, err.Code)
	}
}

func TestAdapterMessages(t *testing.T) {
	in := VacancyInput{Name: "short"}

	formErr := NewFormAdapter().Vacancy(in)
	apiErr := NewAPIAdapter().Vacancy(in)

	assert.Equal(t, formErr.Code, apiErr.Code)
	assert.NotEqual(t, formErr.Message, apiErr.Message)
}
