package settingsrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/pg"
	"go.uber.org/zap"
)

const DefaultTimezone = "Europe/Moscow"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetCompany(ctx context.Context, companyID int) (*domain.CompanySettings, error) {
	query := `
        SELECT id, company_id, timezone, logo, description, site, rating
        FROM company_settings
        WHERE company_id = $1
    `
	var s domain.CompanySettings
	err := r.db.QueryRow(ctx, query, companyID).
		Scan(&s.ID, &s.CompanyID, &s.Timezone, &s.Logo, &s.Description, &s.Site, &s.Rating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get company settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetApplicant(ctx context.Context, applicantID int) (*domain.ApplicantSettings, error) {
	query := `
        SELECT id, applicant_id, timezone, avatar
        FROM applicant_settings
        WHERE applicant_id = $1
    `
	var s domain.ApplicantSettings
	err := r.db.QueryRow(ctx, query, applicantID).
		Scan(&s.ID, &s.ApplicantID, &s.Timezone, &s.Avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get applicant settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// CreateDefaults provisions the role's settings row at registration time.
func (r *Repository) CreateDefaults(ctx context.Context, userID int, isCompany bool) error {
	query := `
        INSERT INTO applicant_settings (applicant_id, timezone)
        VALUES ($1, $2)
    `
	if isCompany {
		query = `
        INSERT INTO company_settings (company_id, timezone)
        VALUES ($1, $2)
    `
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, userID, DefaultTimezone)
		if err != nil {
			zap.L().Error("can't create default settings", zap.Error(err))
			return pg.TranslateError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateTimezone(ctx context.Context, userID int, isCompany bool, timezone string) error {
	query := `
        UPDATE applicant_settings
        SET timezone = $1
        WHERE applicant_id = $2
    `
	if isCompany {
		query = `
        UPDATE company_settings
        SET timezone = $1
        WHERE company_id = $2
    `
	}
	_, err := r.db.Exec(ctx, query, timezone, userID)
	if err != nil {
		zap.L().Error("can't update timezone", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePhoto(ctx context.Context, userID int, isCompany bool, path string) error {
	query := `
        UPDATE applicant_settings
        SET avatar = $1
        WHERE applicant_id = $2
    `
	if isCompany {
		query = `
        UPDATE company_settings
        SET logo = $1
        WHERE company_id = $2
    `
	}
	_, err := r.db.Exec(ctx, query, path, userID)
	if err != nil {
		zap.L().Error("can't update photo", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateCompanyProfile(ctx context.Context, companyID int, description, site string) error {
	query := `
        UPDATE company_settings
        SET description = $1, site = $2
        WHERE company_id = $3
    `
	_, err := r.db.Exec(ctx, query, description, site, companyID)
	if err != nil {
		zap.L().Error("can't update company profile", zap.Error(err))
		return err
	}
	return nil
}
