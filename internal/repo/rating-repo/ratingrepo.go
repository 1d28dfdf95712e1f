package ratingrepo

import (
	"context"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/pg"
	"go.uber.org/zap"
)

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

func (r *Repository) ExistsForApplicantAndCompany(ctx context.Context, applicantID, companyID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM ratings WHERE applicant_id = $1 AND company_id = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, applicantID, companyID).Scan(&exists); err != nil {
		zap.L().Error("can't check rating existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// SaveAndRecompute inserts the rating and refreshes the company's mean in
// one transaction, so the aggregate never drifts from the rating set.
// Returns the new aggregate, rounded to 2 decimal places.
func (r *Repository) SaveAndRecompute(ctx context.Context, rating *domain.Rating) (float64, error) {
	var aggregate float64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, `
        INSERT INTO ratings (applicant_id, company_id, rating, comment, time_added)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, rating.ApplicantID, rating.CompanyID, rating.Rating, rating.Comment, rating.TimeAdded)
		if err := row.Scan(&rating.ID); err != nil {
			zap.L().Error("can't save rating", zap.Error(err))
			return pg.TranslateError(err)
		}

		row = r.db.QueryRow(ctx, `
        UPDATE company_settings
        SET rating = (
            SELECT ROUND(AVG(rating)::numeric, 2) FROM ratings WHERE company_id = $1
        )
        WHERE company_id = $1
        RETURNING rating
    `, rating.CompanyID)
		if err := row.Scan(&aggregate); err != nil {
			zap.L().Error("can't recompute company rating", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return aggregate, nil
}

func (r *Repository) FindByCompanyID(ctx context.Context, companyID int) ([]domain.Rating, error) {
	query := `
        SELECT id, applicant_id, company_id, rating, comment, time_added
        FROM ratings
        WHERE company_id = $1
        ORDER BY time_added DESC
    `
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		zap.L().Error("can't get ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rating domain.Rating
		err := rows.Scan(&rating.ID, &rating.ApplicantID, &rating.CompanyID,
			&rating.Rating, &rating.Comment, &rating.TimeAdded)
		if err != nil {
			zap.L().Error("can't scan rating row", zap.Error(err))
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}
