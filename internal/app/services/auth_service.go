package services

import (
	"context"
	"fmt"

	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/app/repositories"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/auth"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users      *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		users:      users,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and returns the user with a signed access
// token. A wrong password and an unknown email both map to
// apperrors.ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Warn().Str("email", email).Msg("Login attempt with wrong password")
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", apperrors.ErrAccountDisabled
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("error generating access token: %w", err)
	}

	logger.Info().Str("email", email).Msg("User logged in")
	return user, token, nil
}

// GetUserByID retrieves a user by ID
func (s *authServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetUserByID(ctx, id)
}
