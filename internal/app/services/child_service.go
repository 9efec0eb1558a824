package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/app/repositories"
	"github.com/wkalungi/sponsorbase/internal/pkg/apperrors"
	"github.com/wkalungi/sponsorbase/internal/pkg/helpers"
	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
)

// ChildService defines the interface for child record operations
type ChildService interface {
	CreateChild(ctx context.Context, child *models.Child) (*models.Child, error)
	GetChildByID(ctx context.Context, id int64) (*models.Child, error)
	ListChildren(ctx context.Context, search string, page, pageSize int) ([]*models.Child, int64, error)
	UpdateChild(ctx context.Context, child *models.Child) error
	UpdateChildAvatar(ctx context.Context, id int64, avatarPath string) error
	DeleteChild(ctx context.Context, id int64) error
	DeleteAllChildren(ctx context.Context) (int64, error)
}

// childServiceImpl implements the ChildService interface
type childServiceImpl struct {
	children *repositories.ChildRepository
}

// NewChildService creates a new child service instance
func NewChildService(children *repositories.ChildRepository) ChildService {
	return &childServiceImpl{children: children}
}

// CreateChild registers a single child record. The full name is required;
// every other registration field is optional.
func (s *childServiceImpl) CreateChild(ctx context.Context, child *models.Child) (*models.Child, error) {
	child.FullName = strings.TrimSpace(child.FullName)
	if child.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", apperrors.ErrValidationFailed)
	}

	id, err := s.children.CreateChild(ctx, child)
	if err != nil {
		return nil, err
	}
	child.ID = id

	logger.Info().Int64("childID", id).Str("fullName", child.FullName).Msg("Child registered")
	return child, nil
}

// GetChildByID retrieves a child by ID
func (s *childServiceImpl) GetChildByID(ctx context.Context, id int64) (*models.Child, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid child ID", apperrors.ErrValidationFailed)
	}
	return s.children.GetChildByID(ctx, id)
}

// ListChildren returns a page of children matching the optional
// name-substring search, with the total match count.
func (s *childServiceImpl) ListChildren(ctx context.Context, search string, page, pageSize int) ([]*models.Child, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	children, err := s.children.ListChildren(ctx, search, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.children.CountChildren(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	return children, total, nil
}

// UpdateChild updates an existing child record.
func (s *childServiceImpl) UpdateChild(ctx context.Context, child *models.Child) error {
	if child.ID <= 0 {
		return fmt.Errorf("%w: invalid child ID", apperrors.ErrValidationFailed)
	}
	child.FullName = strings.TrimSpace(child.FullName)
	if child.FullName == "" {
		return fmt.Errorf("%w: full name is required", apperrors.ErrValidationFailed)
	}
	return s.children.UpdateChild(ctx, child)
}

// UpdateChildAvatar records the stored path of an uploaded profile photo.
func (s *childServiceImpl) UpdateChildAvatar(ctx context.Context, id int64, avatarPath string) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid child ID", apperrors.ErrValidationFailed)
	}
	return s.children.UpdateChildAvatar(ctx, id, avatarPath)
}

// DeleteChild removes a child record. Sponsorship rows cascade in the database.
func (s *childServiceImpl) DeleteChild(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid child ID", apperrors.ErrValidationFailed)
	}
	return s.children.DeleteChild(ctx, id)
}

// DeleteAllChildren wipes the children table and returns how many rows went.
// Used before re-importing a corrected master list.
func (s *childServiceImpl) DeleteAllChildren(ctx context.Context) (int64, error) {
	deleted, err := s.children.DeleteAllChildren(ctx)
	if err != nil {
		return 0, err
	}
	logger.Warn().Int64("deleted", deleted).Msg("All children deleted")
	return deleted, nil
}
