package offerservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/worksite/internal/access"
	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/internal/media"
	"github.com/GlebRadaev/worksite/internal/validation"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Offer, error)
	Save(ctx context.Context, o *domain.Offer) error
	SetWithdrawn(ctx context.Context, id int) error
	Apply(ctx context.Context, offerID, vacancyID int, applyedAt time.Time) error
	ExistsForApplicantAndVacancy(ctx context.Context, applicantID, vacancyID int) (bool, error)
	FindByApplicantID(ctx context.Context, applicantID int) ([]domain.Offer, error)
	FindApplyedByCompanyID(ctx context.Context, companyID int) ([]domain.Offer, error)
}

type VacancyRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Vacancy, error)
}

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}

type FileStore interface {
	SaveOfferResume(applicantID, vacancyID int, filename string, data []byte) (string, error)
}

type Service struct {
	repo        Repo
	vacancyRepo VacancyRepo
	userRepo    UserRepo
	files       FileStore
	validator   validation.Adapter
}

func New(repo Repo, vacancyRepo VacancyRepo, userRepo UserRepo, files FileStore, validator validation.Adapter) *Service {
	return &Service{
		repo:        repo,
		vacancyRepo: vacancyRepo,
		userRepo:    userRepo,
		files:       files,
		validator:   validator,
	}
}

// Create submits an applicant's offer on a live vacancy. Exactly one of
// resume (an uploaded file) or resumeText must be set.
func (s *Service) Create(ctx context.Context, actor domain.Actor, vacancyID int, resume *media.Upload, resumeText string) (*domain.Offer, error) {
	vacancy, err := s.vacancyRepo.FindByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	var exists bool
	if actor.Authenticated && vacancy != nil {
		exists, err = s.repo.ExistsForApplicantAndVacancy(ctx, actor.ID, vacancyID)
		if err != nil {
			return nil, err
		}
	}
	if err := access.CreateOffer(actor, vacancy, exists); err != nil {
		return nil, err
	}
	if ferr := s.validator.Offer(validation.OfferInput{
		HasResumeFile: resume != nil,
		ResumeText:    resumeText,
	}); ferr != nil {
		return nil, ferr
	}

	offer := &domain.Offer{
		ApplicantID: actor.ID,
		VacancyID:   vacancyID,
		TimeAdded:   time.Now(),
	}
	if resume != nil {
		path, err := s.files.SaveOfferResume(actor.ID, vacancyID, resume.Filename, resume.Data)
		if err != nil {
			zap.L().Error("can't store resume file", zap.Error(err))
			return nil, err
		}
		offer.Resume = path
	} else {
		offer.ResumeText = &resumeText
	}

	if err := s.repo.Save(ctx, offer); err != nil {
		zap.L().Error("can't save offer", zap.Error(err))
		return nil, err
	}
	return offer, nil
}

func (s *Service) Withdraw(ctx context.Context, actor domain.Actor, offerID int) error {
	offer, err := s.repo.FindByID(ctx, offerID)
	if err != nil {
		return err
	}
	if err := access.WithdrawOffer(actor, offer); err != nil {
		return err
	}
	if err := s.repo.SetWithdrawn(ctx, offerID); err != nil {
		zap.L().Error("can't withdraw offer", zap.Error(err))
		return err
	}
	return nil
}

// Apply accepts an offer on behalf of the vacancy's company. The offer is
// marked accepted and the vacancy archived atomically.
func (s *Service) Apply(ctx context.Context, actor domain.Actor, offerID int) error {
	offer, err := s.repo.FindByID(ctx, offerID)
	if err != nil {
		return err
	}
	var vacancy *domain.Vacancy
	if offer != nil {
		vacancy, err = s.vacancyRepo.FindByID(ctx, offer.VacancyID)
		if err != nil {
			return err
		}
	}
	if err := access.ApplyOffer(actor, offer, vacancy); err != nil {
		return err
	}
	if err := s.repo.Apply(ctx, offer.ID, vacancy.ID, time.Now()); err != nil {
		zap.L().Error("can't apply offer", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Offer, error) {
	if !actor.Authenticated || actor.IsCompany {
		return nil, apperrors.ErrForbidden
	}
	offers, err := s.repo.FindByApplicantID(ctx, actor.ID)
	if err != nil {
		zap.L().Error("can't list own offers", zap.Error(err))
		return nil, err
	}
	return offers, nil
}

// CompanyApplyed lists a company's accepted offers by company login.
func (s *Service) CompanyApplyed(ctx context.Context, username string) ([]domain.Offer, error) {
	user, err := s.userRepo.FindByLogin(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsCompany {
		return nil, apperrors.ErrNotFound
	}
	offers, err := s.repo.FindApplyedByCompanyID(ctx, user.ID)
	if err != nil {
		zap.L().Error("can't list applyed offers", zap.Error(err))
		return nil, err
	}
	return offers, nil
}
