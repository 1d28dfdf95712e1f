package authservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/domain"
	"github.com/GlebRadaev/worksite/pkg/auth"
	"go.uber.org/zap"
)

const tokenTTL = 15 * time.Minute

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type SettingsProvisioner interface {
	CreateDefaults(ctx context.Context, userID int, isCompany bool) error
}

type Service struct {
	userRepo UserRepo
	settings SettingsProvisioner
	hash     auth.HashServiceInterface
	jwt      auth.JWTServiceInterface
}

func New(userRepo UserRepo, settings SettingsProvisioner, hash auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo: userRepo,
		settings: settings,
		hash:     hash,
		jwt:      jwtService,
	}
}

// Register creates the account and its role's default settings row.
func (s *Service) Register(ctx context.Context, login, password string, isCompany bool) (*domain.User, error) {
	existing, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrConflict
	}

	hash, err := s.hash.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hash,
		IsCompany:    isCompany,
	})
	if err != nil {
		return nil, err
	}

	if err := s.settings.CreateDefaults(ctx, user.ID, isCompany); err != nil {
		zap.L().Error("can't provision settings", zap.Int("userID", user.ID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials and returns the user.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hash.ComparePassword(user.PasswordHash, password) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int, isCompany bool) (string, error) {
	return s.jwt.GenerateJWT(userID, isCompany, time.Now().Add(tokenTTL))
}
