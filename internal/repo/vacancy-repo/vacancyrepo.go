package vacancyrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Vacancy, error) {
	query := `
        SELECT id, company_id, name, description, money, experience, city, skills, time_added, archived, deleted
        FROM vacancies
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var v domain.Vacancy
	err := row.Scan(&v.ID, &v.CompanyID, &v.Name, &v.Description, &v.Money, &v.Experience,
		&v.City, &v.Skills, &v.TimeAdded, &v.Archived, &v.Deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find vacancy", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Save(ctx context.Context, v *domain.Vacancy) error {
	query := `
        INSERT INTO vacancies (company_id, name, description, money, experience, city, skills, time_added)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, v.CompanyID, v.Name, v.Description, v.Money,
			v.Experience, v.City, v.Skills, v.TimeAdded)
		if err := row.Scan(&v.ID); err != nil {
			zap.L().Error("can't save vacancy", zap.Error(err))
			return pg.TranslateError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) SetDeleted(ctx context.Context, id int) error {
	query := `
        UPDATE vacancies
        SET deleted = TRUE
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't delete vacancy", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// List builds the filter the way the listing surface exposes it: deleted
// rows never show up, archived rows only when asked for explicitly.
func (r *Repository) List(ctx context.Context, f domain.VacancyFilter) ([]domain.Vacancy, error) {
	conditions := []string{"deleted = FALSE"}
	args := []any{}
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if !f.IncludeArchived {
		conditions = append(conditions, "archived = FALSE")
	}
	if f.CompanyID != 0 {
		conditions = append(conditions, "company_id = "+arg(f.CompanyID))
	}
	if f.City != "" {
		conditions = append(conditions, "city = "+arg(f.City))
	}
	if f.MoneyFrom != 0 {
		conditions = append(conditions, "money >= "+arg(f.MoneyFrom))
	}
	if f.MoneyTo != 0 {
		conditions = append(conditions, "money <= "+arg(f.MoneyTo))
	}
	if len(f.Experience) != 0 {
		placeholders := make([]string, 0, len(f.Experience))
		for _, ex := range f.Experience {
			placeholders = append(placeholders, arg(ex))
		}
		conditions = append(conditions, "experience IN ("+strings.Join(placeholders, ", ")+")")
	}
	if f.Search != "" && (f.SearchName || f.SearchDesc) {
		search := "%" + f.Search + "%"
		var fields []string
		if f.SearchName {
			fields = append(fields, "name ILIKE "+arg(search))
		}
		if f.SearchDesc {
			fields = append(fields, "description ILIKE "+arg(search))
		}
		conditions = append(conditions, "("+strings.Join(fields, " OR ")+")")
	}

	query := `
        SELECT id, company_id, name, description, money, experience, city, skills, time_added, archived, deleted
        FROM vacancies
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY time_added DESC
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list vacancies", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vacancies []domain.Vacancy
	for rows.Next() {
		var v domain.Vacancy
		err := rows.Scan(&v.ID, &v.CompanyID, &v.Name, &v.Description, &v.Money, &v.Experience,
			&v.City, &v.Skills, &v.TimeAdded, &v.Archived, &v.Deleted)
		if err != nil {
			zap.L().Error("can't scan vacancy row", zap.Error(err))
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, nil
}
