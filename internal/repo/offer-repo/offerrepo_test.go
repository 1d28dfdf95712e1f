package offerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var offerRowColumns = []string{"id", "applicant_id", "vacancy_id", "resume", "resume_text",
	"applyed", "withdrawn", "time_added", "time_applyed"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB, mockTxManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_FindByID(t *testing.T) {
	added := time.Now()
	text := "готов выйти завтра, опыт с го пять лет, стек совпадает полностью"

	tests := []struct {
		name      string
		id        int
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Offer
	}{
		{
			name: "Offer exists",
			id:   5,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(offerRowColumns).
					AddRow(5, 2, 10, "", &text, false, false, added, nil)
				mock.ExpectQuery(regexp.QuoteMeta("FROM offers")).
					WithArgs(5).
					WillReturnRows(rows)
			},
			result: &domain.Offer{ID: 5, ApplicantID: 2, VacancyID: 10, ResumeText: &text, TimeAdded: added},
		},
		{
			name: "Offer does not exist",
			id:   99,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM offers")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   5,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM offers")).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Save(t *testing.T) {
	added := time.Now()

	t.Run("Assigns the generated id", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passThroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO offers")).
			WithArgs(2, 10, "media/resumes/2/10/resume.pdf", (*string)(nil), added).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

		o := &domain.Offer{ApplicantID: 2, VacancyID: 10, Resume: "media/resumes/2/10/resume.pdf", TimeAdded: added}
		err := repo.Save(context.Background(), o)
		assert.NoError(t, err)
		assert.Equal(t, 5, o.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passThroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO offers")).
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), &domain.Offer{TimeAdded: added})
		assert.Error(t, err)
	})
}

func TestRepository_SetWithdrawn(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	passThroughTx(txManager)
	mock.ExpectExec(regexp.QuoteMeta("SET withdrawn = TRUE")).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetWithdrawn(context.Background(), 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Apply(t *testing.T) {
	applyedAt := time.Now()

	t.Run("Offer and vacancy update in one transaction", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passThroughTx(txManager)
		mock.ExpectExec(regexp.QuoteMeta("SET applyed = TRUE, time_applyed = $1")).
			WithArgs(applyedAt, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("SET archived = TRUE")).
			WithArgs(10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Apply(context.Background(), 5, 10, applyedAt)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Vacancy update failure aborts", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passThroughTx(txManager)
		mock.ExpectExec(regexp.QuoteMeta("SET applyed = TRUE, time_applyed = $1")).
			WithArgs(applyedAt, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("SET archived = TRUE")).
			WithArgs(10).
			WillReturnError(errors.New("database error"))

		err := repo.Apply(context.Background(), 5, 10, applyedAt)
		assert.Error(t, err)
	})
}

func TestRepository_ExistsForApplicantAndVacancy(t *testing.T) {
	repo, mock, _ := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM offers WHERE applicant_id = $1 AND vacancy_id = $2")).
		WithArgs(2, 10).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForApplicantAndVacancy(context.Background(), 2, 10)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasApplyedForCompany(t *testing.T) {
	repo, mock, _ := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE o.applicant_id = $1 AND v.company_id = $2 AND o.applyed = TRUE")).
		WithArgs(2, 1).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.HasApplyedForCompany(context.Background(), 2, 1)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByVacancyID(t *testing.T) {
	added := time.Now()

	t.Run("Withdrawn offers are excluded by the query", func(t *testing.T) {
		repo, mock, _ := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE vacancy_id = $1 AND withdrawn = FALSE")).
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows(offerRowColumns).
				AddRow(5, 2, 10, "media/resumes/2/10/resume.pdf", nil, false, false, added, nil).
				AddRow(6, 3, 10, "media/resumes/3/10/resume.pdf", nil, false, false, added, nil))

		offers, err := repo.FindByVacancyID(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, offers, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query error", func(t *testing.T) {
		repo, mock, _ := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE vacancy_id = $1 AND withdrawn = FALSE")).
			WithArgs(10).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindByVacancyID(context.Background(), 10)
		assert.Error(t, err)
	})
}

func TestRepository_FindApplyedByCompanyID(t *testing.T) {
	added := time.Now()
	applyed := time.Now()

	repo, mock, _ := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("JOIN vacancies v ON v.id = o.vacancy_id")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(offerRowColumns).
			AddRow(5, 2, 10, "media/resumes/2/10/resume.pdf", nil, true, false, added, &applyed))

	offers, err := repo.FindApplyedByCompanyID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, offers, 1)
	assert.True(t, offers[0].Applyed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
