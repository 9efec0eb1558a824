package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/app/repositories"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// StaffService defines the interface for staff member operations
type StaffService interface {
	CreateStaff(ctx context.Context, staff *models.Staff) (*models.Staff, error)
	GetStaffByID(ctx context.Context, id int64) (*models.Staff, error)
	ListStaff(ctx context.Context) ([]*models.Staff, error)
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	DeleteStaff(ctx context.Context, id int64) error
}

// staffServiceImpl implements the StaffService interface
type staffServiceImpl struct {
	staff *repositories.StaffRepository
}

// NewStaffService creates a new staff service instance
func NewStaffService(staff *repositories.StaffRepository) StaffService {
	return &staffServiceImpl{staff: staff}
}

func validateStaff(staff *models.Staff) error {
	staff.FirstName = strings.TrimSpace(staff.FirstName)
	staff.LastName = strings.TrimSpace(staff.LastName)
	if staff.FirstName == "" || staff.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateStaff registers a new staff member.
func (s *staffServiceImpl) CreateStaff(ctx context.Context, staff *models.Staff) (*models.Staff, error) {
	if err := validateStaff(staff); err != nil {
		return nil, err
	}

	id, err := s.staff.CreateStaff(ctx, staff)
	if err != nil {
		return nil, err
	}
	staff.ID = id

	logger.Info().Int64("staffID", id).Msg("Staff member registered")
	return staff, nil
}

// GetStaffByID retrieves a staff member by ID
func (s *staffServiceImpl) GetStaffByID(ctx context.Context, id int64) (*models.Staff, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}
	return s.staff.GetStaffByID(ctx, id)
}

// ListStaff returns all staff members ordered by name. The roster is small
// enough that it is not paginated.
func (s *staffServiceImpl) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.staff.ListStaff(ctx)
}

// UpdateStaff updates an existing staff member.
func (s *staffServiceImpl) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	if staff.ID <= 0 {
		return fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}
	if err := validateStaff(staff); err != nil {
		return err
	}
	return s.staff.UpdateStaff(ctx, staff)
}

// DeleteStaff removes a staff member. Sponsorship rows cascade.
func (s *staffServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}
	return s.staff.DeleteStaff(ctx, id)
}
