package offerrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const offerColumns = "id, applicant_id, vacancy_id, resume, resume_text, applyed, withdrawn, time_added, time_applyed"

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

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.ApplicantID, &o.VacancyID, &o.Resume, &o.ResumeText,
		&o.Applyed, &o.Withdrawn, &o.TimeAdded, &o.TimeApplyed)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Offer, error) {
	query := `
        SELECT ` + offerColumns + `
        FROM offers
        WHERE id = $1
    `
	offer, err := scanOffer(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find offer", zap.Error(err))
		return nil, err
	}
	return offer, nil
}

func (r *Repository) Save(ctx context.Context, o *domain.Offer) error {
	query := `
        INSERT INTO offers (applicant_id, vacancy_id, resume, resume_text, time_added)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, o.ApplicantID, o.VacancyID, o.Resume, o.ResumeText, o.TimeAdded)
		if err := row.Scan(&o.ID); err != nil {
			zap.L().Error("can't save offer", zap.Error(err))
			return pg.TranslateError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) SetWithdrawn(ctx context.Context, id int) error {
	query := `
        UPDATE offers
        SET withdrawn = TRUE
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't withdraw offer", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Apply marks the offer accepted and archives its vacancy in one
// transaction so the pair is never observable half-done.
func (r *Repository) Apply(ctx context.Context, offerID, vacancyID int, applyedAt time.Time) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `
        UPDATE offers
        SET applyed = TRUE, time_applyed = $1
        WHERE id = $2
    `, applyedAt, offerID)
		if err != nil {
			zap.L().Error("can't apply offer", zap.Error(err))
			return err
		}
		_, err = r.db.Exec(ctx, `
        UPDATE vacancies
        SET archived = TRUE
        WHERE id = $1
    `, vacancyID)
		if err != nil {
			zap.L().Error("can't archive vacancy", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) ExistsForApplicantAndVacancy(ctx context.Context, applicantID, vacancyID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM offers WHERE applicant_id = $1 AND vacancy_id = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, applicantID, vacancyID).Scan(&exists); err != nil {
		zap.L().Error("can't check offer existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindApplyedByVacancyID(ctx context.Context, vacancyID int) (*domain.Offer, error) {
	query := `
        SELECT ` + offerColumns + `
        FROM offers
        WHERE vacancy_id = $1 AND applyed = TRUE
    `
	offer, err := scanOffer(r.db.QueryRow(ctx, query, vacancyID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find applyed offer", zap.Error(err))
		return nil, err
	}
	return offer, nil
}

func (r *Repository) FindByVacancyID(ctx context.Context, vacancyID int) ([]domain.Offer, error) {
	query := `
        SELECT ` + offerColumns + `
        FROM offers
        WHERE vacancy_id = $1 AND withdrawn = FALSE
        ORDER BY time_added DESC
    `
	return r.queryOffers(ctx, query, vacancyID)
}

func (r *Repository) FindByApplicantID(ctx context.Context, applicantID int) ([]domain.Offer, error) {
	query := `
        SELECT ` + offerColumns + `
        FROM offers
        WHERE applicant_id = $1
        ORDER BY time_added DESC
    `
	return r.queryOffers(ctx, query, applicantID)
}

func (r *Repository) FindApplyedByCompanyID(ctx context.Context, companyID int) ([]domain.Offer, error) {
	query := `
        SELECT o.id, o.applicant_id, o.vacancy_id, o.resume, o.resume_text, o.applyed, o.withdrawn, o.time_added, o.time_applyed
        FROM offers o
        JOIN vacancies v ON v.id = o.vacancy_id
        WHERE v.company_id = $1 AND o.applyed = TRUE
        ORDER BY o.time_added DESC
    `
	return r.queryOffers(ctx, query, companyID)
}

func (r *Repository) HasApplyedForCompany(ctx context.Context, applicantID, companyID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM offers o
            JOIN vacancies v ON v.id = o.vacancy_id
            WHERE o.applicant_id = $1 AND v.company_id = $2 AND o.applyed = TRUE
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, applicantID, companyID).Scan(&exists); err != nil {
		zap.L().Error("can't check applyed offers", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) queryOffers(ctx context.Context, query string, args ...any) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get offers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			zap.L().Error("can't scan offer row", zap.Error(err))
			return nil, err
		}
		offers = append(offers, *offer)
	}
	return offers, nil
}
