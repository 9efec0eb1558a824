package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/app/repositories"
	"github.com/wkalungi/sponsorbase/internal/db"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/helpers"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// SponsorService defines the interface for sponsor operations
type SponsorService interface {
	CreateSponsor(ctx context.Context, sponsor *models.Sponsor) (*models.Sponsor, error)
	GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error)
	ListSponsors(ctx context.Context, search string, page, pageSize int) ([]*models.Sponsor, int64, error)
	UpdateSponsor(ctx context.Context, sponsor *models.Sponsor) error
	DeleteSponsor(ctx context.Context, id int64) error
	DepartSponsor(ctx context.Context, departure *models.SponsorDeparture) (*models.SponsorDeparture, error)
	ListDepartures(ctx context.Context, sponsorID int64) ([]*models.SponsorDeparture, error)
}

// sponsorServiceImpl implements the SponsorService interface
type sponsorServiceImpl struct {
	db       *db.PostgresDB
	sponsors *repositories.SponsorRepository
}

// NewSponsorService creates a new sponsor service instance
func NewSponsorService(database *db.PostgresDB, sponsors *repositories.SponsorRepository) SponsorService {
	return &sponsorServiceImpl{
		db:       database,
		sponsors: sponsors,
	}
}

func validateSponsor(sponsor *models.Sponsor) error {
	sponsor.FirstName = strings.TrimSpace(sponsor.FirstName)
	sponsor.LastName = strings.TrimSpace(sponsor.LastName)
	if sponsor.FirstName == "" || sponsor.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", apperrors.ErrValidationFailed)
	}
	if t := models.SponsorshipType(sponsor.SponsorshipTypeAtSignup); t != "" && !t.Valid() {
		return fmt.Errorf("%w: unknown sponsorship type %q", apperrors.ErrValidationFailed, t)
	}
	return nil
}

// CreateSponsor registers a new sponsor.
func (s *sponsorServiceImpl) CreateSponsor(ctx context.Context, sponsor *models.Sponsor) (*models.Sponsor, error) {
	if err := validateSponsor(sponsor); err != nil {
		return nil, err
	}

	id, err := s.sponsors.CreateSponsor(ctx, sponsor)
	if err != nil {
		return nil, err
	}
	sponsor.ID = id

	logger.Info().Int64("sponsorID", id).Str("prefixedID", sponsor.PrefixedID()).Msg("Sponsor registered")
	return sponsor, nil
}

// GetSponsorByID retrieves a sponsor by ID
func (s *sponsorServiceImpl) GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid sponsor ID", apperrors.ErrValidationFailed)
	}
	return s.sponsors.GetSponsorByID(ctx, id)
}

// ListSponsors returns a page of sponsors matching the optional name search.
func (s *sponsorServiceImpl) ListSponsors(ctx context.Context, search string, page, pageSize int) ([]*models.Sponsor, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sponsors, err := s.sponsors.ListSponsors(ctx, search, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.sponsors.CountSponsors(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	return sponsors, total, nil
}

// UpdateSponsor updates an existing sponsor.
func (s *sponsorServiceImpl) UpdateSponsor(ctx context.Context, sponsor *models.Sponsor) error {
	if sponsor.ID <= 0 {
		return fmt.Errorf("%w: invalid sponsor ID", apperrors.ErrValidationFailed)
	}
	if err := validateSponsor(sponsor); err != nil {
		return err
	}
	return s.sponsors.UpdateSponsor(ctx, sponsor)
}

// DeleteSponsor removes a sponsor. Sponsorship and departure rows cascade.
func (s *sponsorServiceImpl) DeleteSponsor(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid sponsor ID", apperrors.ErrValidationFailed)
	}
	return s.sponsors.DeleteSponsor(ctx, id)
}

// DepartSponsor marks the sponsor departed and records the departure in one
// transaction, so the flag and the history row never drift apart.
func (s *sponsorServiceImpl) DepartSponsor(ctx context.Context, departure *models.SponsorDeparture) (*models.SponsorDeparture, error) {
	if departure.SponsorID <= 0 {
		return nil, fmt.Errorf("%w: invalid sponsor ID", apperrors.ErrValidationFailed)
	}

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := s.sponsors.RecordDeparture(ctx, tx, departure)
		if err != nil {
			return err
		}
		departure.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("sponsorID", departure.SponsorID).Msg("Sponsor departure recorded")
	return departure, nil
}

// ListDepartures returns a sponsor's departure history, newest first.
func (s *sponsorServiceImpl) ListDepartures(ctx context.Context, sponsorID int64) ([]*models.SponsorDeparture, error) {
	if sponsorID <= 0 {
		return nil, fmt.Errorf("%w: invalid sponsor ID", apperrors.ErrValidationFailed)
	}
	if _, err := s.sponsors.GetSponsorByID(ctx, sponsorID); err != nil {
		return nil, err
	}
	return s.sponsors.ListDepartures(ctx, sponsorID)
}
