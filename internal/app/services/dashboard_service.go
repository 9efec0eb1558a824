package services

import (
	"context"
	"fmt"

	"github.com/wkalungi/sponsorbase/internal/app/models/dto"
	"github.com/wkalungi/sponsorbase/internal/app/repositories"
)

// DashboardService defines the interface for dashboard summary counts
type DashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardResponse, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	children     *repositories.ChildRepository
	sponsors     *repositories.SponsorRepository
	staff        *repositories.StaffRepository
	sponsorships *repositories.SponsorshipRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	children *repositories.ChildRepository,
	sponsors *repositories.SponsorRepository,
	staff *repositories.StaffRepository,
	sponsorships *repositories.SponsorshipRepository,
) DashboardService {
	return &dashboardServiceImpl{
		children:     children,
		sponsors:     sponsors,
		staff:        staff,
		sponsorships: sponsorships,
	}
}

// GetSummary returns the headline counts shown on the dashboard.
func (s *dashboardServiceImpl) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	childCount, err := s.children.CountChildren(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error counting children: %w", err)
	}

	sponsorCount, err := s.sponsors.CountSponsors(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error counting sponsors: %w", err)
	}

	staffCount, err := s.staff.CountStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting staff: %w", err)
	}

	activeChildSponsorships, err := s.sponsorships.CountActiveChildSponsorships(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting active child sponsorships: %w", err)
	}

	activeStaffSponsorships, err := s.sponsorships.CountActiveStaffSponsorships(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting active staff sponsorships: %w", err)
	}

	return &dto.DashboardResponse{
		ChildrenRegistered:      childCount,
		Sponsors:                sponsorCount,
		StaffMembers:            staffCount,
		ActiveChildSponsorships: activeChildSponsorships,
		ActiveStaffSponsorships: activeStaffSponsorships,
	}, nil
}
