package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// SponsorshipStore is the persistence surface the sponsorship service
// needs. *repositories.SponsorshipRepository implements it; tests swap in
// an in-memory fake.
type SponsorshipStore interface {
	CreateChildSponsorship(ctx context.Context, s *models.ChildSponsorship) (int64, error)
	CreateStaffSponsorship(ctx context.Context, s *models.StaffSponsorship) (int64, error)
	GetChildSponsorshipByPair(ctx context.Context, sponsorID, childID int64) (*models.ChildSponsorship, error)
	GetStaffSponsorshipByPair(ctx context.Context, sponsorID, staffID int64) (*models.StaffSponsorship, error)
	GetChildSponsorshipByID(ctx context.Context, id int64) (*models.ChildSponsorship, error)
	GetStaffSponsorshipByID(ctx context.Context, id int64) (*models.StaffSponsorship, error)
	UpdateChildSponsorship(ctx context.Context, s *models.ChildSponsorship) error
	UpdateStaffSponsorship(ctx context.Context, s *models.StaffSponsorship) error
	ListActiveChildSponsorshipsBySponsor(ctx context.Context, sponsorID int64) ([]*models.ChildSponsorship, error)
	ListActiveChildSponsorshipsByChild(ctx context.Context, childID int64) ([]*models.ChildSponsorship, error)
	ListActiveStaffSponsorshipsBySponsor(ctx context.Context, sponsorID int64) ([]*models.StaffSponsorship, error)
	ListActiveStaffSponsorshipsByStaff(ctx context.Context, staffID int64) ([]*models.StaffSponsorship, error)
	DeleteChildSponsorship(ctx context.Context, id int64) error
	DeleteStaffSponsorship(ctx context.Context, id int64) error
}

// SponsorshipService defines the interface for sponsorship relationship operations
type SponsorshipService interface {
	BeginChildSponsorship(ctx context.Context, sponsorID, childID int64, sType models.SponsorshipType, startDate time.Time) (*models.ChildSponsorship, error)
	BeginStaffSponsorship(ctx context.Context, sponsorID, staffID int64, sType models.SponsorshipType, startDate time.Time) (*models.StaffSponsorship, error)
	EndChildSponsorship(ctx context.Context, sponsorID, childID int64, endDate time.Time) (*models.ChildSponsorship, error)
	EndStaffSponsorship(ctx context.Context, sponsorID, staffID int64, endDate time.Time) (*models.StaffSponsorship, error)
	GetChildSponsorshipByID(ctx context.Context, id int64) (*models.ChildSponsorship, error)
	GetStaffSponsorshipByID(ctx context.Context, id int64) (*models.StaffSponsorship, error)
	UpdateChildSponsorship(ctx context.Context, s *models.ChildSponsorship) error
	UpdateStaffSponsorship(ctx context.Context, s *models.StaffSponsorship) error
	ListActiveBySponsor(ctx context.Context, sponsorID int64) ([]*models.ChildSponsorship, []*models.StaffSponsorship, error)
	ListActiveByChild(ctx context.Context, childID int64) ([]*models.ChildSponsorship, error)
	ListActiveByStaff(ctx context.Context, staffID int64) ([]*models.StaffSponsorship, error)
	DeleteChildSponsorship(ctx context.Context, id int64) error
	DeleteStaffSponsorship(ctx context.Context, id int64) error
}

// sponsorshipServiceImpl implements the SponsorshipService interface
type sponsorshipServiceImpl struct {
	store SponsorshipStore
}

// NewSponsorshipService creates a new sponsorship service instance
func NewSponsorshipService(store SponsorshipStore) SponsorshipService {
	return &sponsorshipServiceImpl{store: store}
}

func validateSponsorshipArgs(sponsorID, targetID int64, sType models.SponsorshipType) error {
	if sponsorID <= 0 || targetID <= 0 {
		return fmt.Errorf("%w: sponsor and beneficiary IDs must be positive", apperrors.ErrValidationFailed)
	}
	if !sType.Valid() {
		return fmt.Errorf("%w: unknown sponsorship type %q", apperrors.ErrValidationFailed, sType)
	}
	return nil
}

// BeginChildSponsorship creates an active relationship row for the
// (sponsor, child) pair. If any row already exists for the pair, active or
// ended, the call fails with apperrors.ErrSponsorshipExists: re-sponsoring
// a pair reuses the existing row through UpdateChildSponsorship.
func (s *sponsorshipServiceImpl) BeginChildSponsorship(ctx context.Context, sponsorID, childID int64, sType models.SponsorshipType, startDate time.Time) (*models.ChildSponsorship, error) {
	if err := validateSponsorshipArgs(sponsorID, childID, sType); err != nil {
		return nil, err
	}

	sponsorship := &models.ChildSponsorship{
		SponsorID: sponsorID,
		ChildID:   childID,
		Type:      sType,
		StartDate: &startDate,
		IsActive:  true,
	}

	id, err := s.store.CreateChildSponsorship(ctx, sponsorship)
	if err != nil {
		return nil, err
	}
	sponsorship.ID = id

	logger.Info().
		Int64("sponsorID", sponsorID).
		Int64("childID", childID).
		Str("type", string(sType)).
		Msg("Child sponsorship started")
	return sponsorship, nil
}

// BeginStaffSponsorship creates an active relationship row for the
// (sponsor, staff) pair, with the same pair-uniqueness rule as children.
func (s *sponsorshipServiceImpl) BeginStaffSponsorship(ctx context.Context, sponsorID, staffID int64, sType models.SponsorshipType, startDate time.Time) (*models.StaffSponsorship, error) {
	if err := validateSponsorshipArgs(sponsorID, staffID, sType); err != nil {
		return nil, err
	}

	sponsorship := &models.StaffSponsorship{
		SponsorID: sponsorID,
		StaffID:   staffID,
		Type:      sType,
		StartDate: &startDate,
		IsActive:  true,
	}

	id, err := s.store.CreateStaffSponsorship(ctx, sponsorship)
	if err != nil {
		return nil, err
	}
	sponsorship.ID = id

	logger.Info().
		Int64("sponsorID", sponsorID).
		Int64("staffID", staffID).
		Str("type", string(sType)).
		Msg("Staff sponsorship started")
	return sponsorship, nil
}

// EndChildSponsorship closes the active relationship for the pair: sets
// the end date and clears is_active. Ending a pair with no relationship
// row fails with apperrors.ErrSponsorshipNotFound; ending one that has
// already ended fails with apperrors.ErrSponsorshipEnded.
func (s *sponsorshipServiceImpl) EndChildSponsorship(ctx context.Context, sponsorID, childID int64, endDate time.Time) (*models.ChildSponsorship, error) {
	if sponsorID <= 0 || childID <= 0 {
		return nil, fmt.Errorf("%w: sponsor and beneficiary IDs must be positive", apperrors.ErrValidationFailed)
	}

	sponsorship, err := s.store.GetChildSponsorshipByPair(ctx, sponsorID, childID)
	if err != nil {
		return nil, err
	}
	if !sponsorship.IsActive {
		return nil, apperrors.ErrSponsorshipEnded
	}

	sponsorship.EndDate = &endDate
	sponsorship.IsActive = false
	if err := s.store.UpdateChildSponsorship(ctx, sponsorship); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("sponsorID", sponsorID).
		Int64("childID", childID).
		Time("endDate", endDate).
		Msg("Child sponsorship ended")
	return sponsorship, nil
}

// EndStaffSponsorship closes the active relationship for a (sponsor, staff)
// pair, with the same semantics as EndChildSponsorship.
func (s *sponsorshipServiceImpl) EndStaffSponsorship(ctx context.Context, sponsorID, staffID int64, endDate time.Time) (*models.StaffSponsorship, error) {
	if sponsorID <= 0 || staffID <= 0 {
		return nil, fmt.Errorf("%w: sponsor and beneficiary IDs must be positive", apperrors.ErrValidationFailed)
	}

	sponsorship, err := s.store.GetStaffSponsorshipByPair(ctx, sponsorID, staffID)
	if err != nil {
		return nil, err
	}
	if !sponsorship.IsActive {
		return nil, apperrors.ErrSponsorshipEnded
	}

	sponsorship.EndDate = &endDate
	sponsorship.IsActive = false
	if err := s.store.UpdateStaffSponsorship(ctx, sponsorship); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("sponsorID", sponsorID).
		Int64("staffID", staffID).
		Time("endDate", endDate).
		Msg("Staff sponsorship ended")
	return sponsorship, nil
}

// GetChildSponsorshipByID retrieves a child sponsorship by its row ID.
func (s *sponsorshipServiceImpl) GetChildSponsorshipByID(ctx context.Context, id int64) (*models.ChildSponsorship, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid sponsorship ID", apperrors.ErrValidationFailed)
	}
	return s.store.GetChildSponsorshipByID(ctx, id)
}

// GetStaffSponsorshipByID retrieves a staff sponsorship by its row ID.
func (s *sponsorshipServiceImpl) GetStaffSponsorshipByID(ctx context.Context, id int64) (*models.StaffSponsorship, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid sponsorship ID", apperrors.ErrValidationFailed)
	}
	return s.store.GetStaffSponsorshipByID(ctx, id)
}

// UpdateChildSponsorship rewrites an existing row. This is also the
// re-sponsoring path: set IsActive true with a new start date.
func (s *sponsorshipServiceImpl) UpdateChildSponsorship(ctx context.Context, sponsorship *models.ChildSponsorship) error {
	if sponsorship.ID <= 0 {
		return fmt.Errorf("%w: invalid sponsorship ID", apperrors.ErrValidationFailed)
	}
	if !sponsorship.Type.Valid() {
		return fmt.Errorf("%w: unknown sponsorship type %q", apperrors.ErrValidationFailed, sponsorship.Type)
	}
	return s.store.UpdateChildSponsorship(ctx, sponsorship)
}

// UpdateStaffSponsorship rewrites an existing staff sponsorship row.
func (s *sponsorshipServiceImpl) UpdateStaffSponsorship(ctx context.Context, sponsorship *models.StaffSponsorship) error {
	if sponsorship.ID <= 0 {
		return fmt.Errorf("%w: invalid sponsorship ID", apperrors.ErrValidationFailed)
	}
	if !sponsorship.Type.Valid() {
		return fmt.Errorf("%w: unknown sponsorship type %q", apperrors.ErrValidationFailed, sponsorship.Type)
	}
	return s.store.UpdateStaffSponsorship(ctx, sponsorship)
}

// ListActiveBySponsor returns the sponsor's active child and staff
// sponsorships, each ordered by start date ascending.
func (s *sponsorshipServiceImpl) ListActiveBySponsor(ctx context.Context, sponsorID int64) ([]*models.ChildSponsorship, []*models.StaffSponsorship, error) {
	if sponsorID <= 0 {
		return nil, nil, fmt.Errorf("%w: invalid sponsor ID", apperrors.ErrValidationFailed)
	}

	children, err := s.store.ListActiveChildSponsorshipsBySponsor(ctx, sponsorID)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing active child sponsorships: %w", err)
	}
	staff, err := s.store.ListActiveStaffSponsorshipsBySponsor(ctx, sponsorID)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing active staff sponsorships: %w", err)
	}
	return children, staff, nil
}

// ListActiveByChild returns a child's active sponsorships ordered by start date.
func (s *sponsorshipServiceImpl) ListActiveByChild(ctx context.Context, childID int64) ([]*models.ChildSponsorship, error) {
	if childID <= 0 {
		return nil, fmt.Errorf("%w: invalid child ID", apperrors.ErrValidationFailed)
	}
	return s.store.ListActiveChildSponsorshipsByChild(ctx, childID)
}

// ListActiveByStaff returns a staff member's active sponsorships ordered by start date.
func (s *sponsorshipServiceImpl) ListActiveByStaff(ctx context.Context, staffID int64) ([]*models.StaffSponsorship, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}
	return s.store.ListActiveStaffSponsorshipsByStaff(ctx, staffID)
}

// DeleteChildSponsorship removes a child sponsorship row entirely.
func (s *sponsorshipServiceImpl) DeleteChildSponsorship(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid sponsorship ID", apperrors.ErrValidationFailed)
	}
	return s.store.DeleteChildSponsorship(ctx, id)
}

// DeleteStaffSponsorship removes a staff sponsorship row entirely.
func (s *sponsorshipServiceImpl) DeleteStaffSponsorship(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid sponsorship ID", apperrors.ErrValidationFailed)
	}
	return s.store.DeleteStaffSponsorship(ctx, id)
}
