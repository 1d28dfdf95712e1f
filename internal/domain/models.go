package domain

import "time"

// Actor is the authenticated or anonymous principal behind a request.
// Role travels in the token, it is not looked up per request.
type Actor struct {
	ID            int
	Authenticated bool
	IsCompany     bool
}

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsCompany    bool      `db:"is_company"`
	CreatedAt    time.Time `db:"created_at"`
}

type Vacancy struct {
	ID          int       `db:"id"`
	CompanyID   int       `db:"company_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Money       int       `db:"money"`
	Experience  string    `db:"experience"`
	City        string    `db:"city"`
	Skills      string    `db:"skills"`
	TimeAdded   time.Time `db:"time_added"`
	Archived    bool      `db:"archived"`
	Deleted     bool      `db:"deleted"`
}

// Offer carries either a stored resume file path or a resume text,
// never both (check constraint only_one_resume).
type Offer struct {
	ID          int        `db:"id"`
	ApplicantID int        `db:"applicant_id"`
	VacancyID   int        `db:"vacancy_id"`
	Resume      string     `db:"resume"`
	ResumeText  *string    `db:"resume_text"`
	Applyed     bool       `db:"applyed"`
	Withdrawn   bool       `db:"withdrawn"`
	TimeAdded   time.Time  `db:"time_added"`
	TimeApplyed *time.Time `db:"time_applyed"`
}

type Rating struct {
	ID          int       `db:"id"`
	ApplicantID int       `db:"applicant_id"`
	CompanyID   int       `db:"company_id"`
	Rating      int       `db:"rating"`
	Comment     string    `db:"comment"`
	TimeAdded   time.Time `db:"time_added"`
}

type CompanySettings struct {
	ID          int     `db:"id"`
	CompanyID   int     `db:"company_id"`
	Timezone    string  `db:"timezone"`
	Logo        string  `db:"logo"`
	Description string  `db:"description"`
	Site        string  `db:"site"`
	Rating      float64 `db:"rating"`
}

type ApplicantSettings struct {
	ID          int    `db:"id"`
	ApplicantID int    `db:"applicant_id"`
	Timezone    string `db:"timezone"`
	Avatar      string `db:"avatar"`
}

// VacancyFilter narrows vacancy listings. Zero values mean "no filter".
type VacancyFilter struct {
	City            string
	MoneyFrom       int
	MoneyTo         int
	Experience      []string
	Search          string
	SearchName      bool
	SearchDesc      bool
	CompanyID       int
	IncludeArchived bool
}
