// Package seed creates the default records a fresh installation needs.
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/app/repositories"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@sponsorbase.app"
	defaultAdminName     = "Administrator"
	defaultAdminPassword = "changeme"
)

// CreateDefaultData seeds the default administrator account if no user with
// the default email exists. The SEED_ADMIN_PASSWORD environment variable
// overrides the built-in initial password.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &models.User{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		FullName:     defaultAdminName,
		IsActive:     true,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", defaultAdminEmail).Msg("Default admin already exists, skipping")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
