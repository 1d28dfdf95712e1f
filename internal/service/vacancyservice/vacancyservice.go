package vacancyservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/worksite/internal/access"
	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/validation"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Vacancy, error)
	Save(ctx context.Context, vacancy *domain.Vacancy) error
	SetDeleted(ctx context.Context, id int) error
	List(ctx context.Context, filter domain.VacancyFilter) ([]domain.Vacancy, error)
}

type OfferRepo interface {
	FindApplyedByVacancyID(ctx context.Context, vacancyID int) (*domain.Offer, error)
	FindByVacancyID(ctx context.Context, vacancyID int) ([]domain.Offer, error)
}

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}

type Service struct {
	repo      Repo
	offerRepo OfferRepo
	userRepo  UserRepo
	validator validation.Adapter
}

func New(repo Repo, offerRepo OfferRepo, userRepo UserRepo, validator validation.Adapter) *Service {
	return &Service{
		repo:      repo,
		offerRepo: offerRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, in validation.VacancyInput) (*domain.Vacancy, error) {
	if !actor.Authenticated || !actor.IsCompany {
		return nil, apperrors.ErrForbidden
	}
	if ferr := s.validator.Vacancy(in); ferr != nil {
		return nil, ferr
	}

	vacancy := &domain.Vacancy{
		CompanyID:   actor.ID,
		Name:        in.Name,
		Description: in.Description,
		Money:       in.Money,
		Experience:  in.Experience,
		City:        in.City,
		Skills:      in.Skills,
		TimeAdded:   time.Now(),
	}
	if err := s.repo.Save(ctx, vacancy); err != nil {
		zap.L().Error("can't save vacancy", zap.Error(err))
		return nil, err
	}
	return vacancy, nil
}

// Get loads a vacancy detail through the visibility gate. For archived
// vacancies the hired applicant is looked up so the gate can recognize
// the two related actors.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id int) (*domain.Vacancy, error) {
	vacancy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var applyedApplicantID int
	if vacancy != nil && vacancy.Archived {
		applyed, err := s.offerRepo.FindApplyedByVacancyID(ctx, vacancy.ID)
		if err != nil {
			return nil, err
		}
		if applyed != nil {
			applyedApplicantID = applyed.ApplicantID
		}
	}

	if err := access.ViewVacancy(actor, vacancy, applyedApplicantID); err != nil {
		return nil, err
	}
	return vacancy, nil
}

func (s *Service) List(ctx context.Context, filter domain.VacancyFilter) ([]domain.Vacancy, error) {
	vacancies, err := s.repo.List(ctx, sanitizeFilter(filter))
	if err != nil {
		zap.L().Error("can't list vacancies", zap.Error(err))
		return nil, err
	}
	return vacancies, nil
}

// ListForCompany returns the company's page listing: every vacancy it
// posted, archived ones included, newest first.
func (s *Service) ListForCompany(ctx context.Context, username string) ([]domain.Vacancy, error) {
	user, err := s.userRepo.FindByLogin(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsCompany {
		return nil, apperrors.ErrNotFound
	}

	vacancies, err := s.repo.List(ctx, domain.VacancyFilter{
		CompanyID:       user.ID,
		IncludeArchived: true,
	})
	if err != nil {
		zap.L().Error("can't list company vacancies", zap.Error(err))
		return nil, err
	}
	return vacancies, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int) error {
	vacancy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.ManageVacancy(actor, vacancy); err != nil {
		return err
	}
	if err := s.repo.SetDeleted(ctx, id); err != nil {
		zap.L().Error("can't delete vacancy", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListOffers(ctx context.Context, actor domain.Actor, vacancyID int) ([]domain.Offer, error) {
	vacancy, err := s.repo.FindByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if err := access.ManageVacancy(actor, vacancy); err != nil {
		return nil, err
	}
	offers, err := s.offerRepo.FindByVacancyID(ctx, vacancyID)
	if err != nil {
		zap.L().Error("can't list vacancy offers", zap.Error(err))
		return nil, err
	}
	return offers, nil
}

// sanitizeFilter drops out-of-contract filter values instead of failing:
// unknown cities, the sentinel city and salary bounds outside
// [1000, 1000000] are ignored, unknown experience values are removed.
func sanitizeFilter(f domain.VacancyFilter) domain.VacancyFilter {
	if f.City == validation.AnyCity || !validation.IsKnownCity(f.City) {
		f.City = ""
	}
	if f.MoneyFrom < 1000 {
		f.MoneyFrom = 0
	}
	if f.MoneyTo > 1000000 || f.MoneyTo < 0 {
		f.MoneyTo = 0
	}
	if len(f.Experience) != 0 {
		// Fresh slice: the caller's query values must not be rewritten.
		valid := make([]string, 0, len(f.Experience))
		for _, ex := range f.Experience {
			if len(ex) == 1 && ex >= "0" && ex <= "4" {
				valid = append(valid, ex)
			}
		}
		f.Experience = valid
	}
	return f
}
