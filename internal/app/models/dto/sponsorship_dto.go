package dto

import "github.com/wkalungi/sponsorbase/internal/app/models"

// BeginChildSponsorshipRequest starts a sponsorship between a sponsor and a child.
type BeginChildSponsorshipRequest struct {
	SponsorID int64  `json:"sponsorId" binding:"required,min=1" example:"1"`
	ChildID   int64  `json:"childId" binding:"required,min=1" example:"7"`
	Type      string `json:"type" binding:"required" example:"Child full support"`
	StartDate string `json:"startDate" binding:"required" example:"2024-01-01"` // YYYY-MM-DD
}

// BeginStaffSponsorshipRequest starts a sponsorship between a sponsor and a staff member.
type BeginStaffSponsorshipRequest struct {
	SponsorID int64  `json:"sponsorId" binding:"required,min=1" example:"1"`
	StaffID   int64  `json:"staffId" binding:"required,min=1" example:"3"`
	Type      string `json:"type" binding:"required" example:"General support"`
	StartDate string `json:"startDate" binding:"required" example:"2024-01-01"` // YYYY-MM-DD
}

// EndChildSponsorshipRequest ends an existing child sponsorship.
type EndChildSponsorshipRequest struct {
	SponsorID int64  `json:"sponsorId" binding:"required,min=1"`
	ChildID   int64  `json:"childId" binding:"required,min=1"`
	EndDate   string `json:"endDate" binding:"required" example:"2024-06-01"` // YYYY-MM-DD
}

// EndStaffSponsorshipRequest ends an existing staff sponsorship.
type EndStaffSponsorshipRequest struct {
	SponsorID int64  `json:"sponsorId" binding:"required,min=1"`
	StaffID   int64  `json:"staffId" binding:"required,min=1"`
	EndDate   string `json:"endDate" binding:"required" example:"2024-06-01"` // YYYY-MM-DD
}

// UpdateSponsorshipRequest rewrites an existing sponsorship row. Setting
// isActive back to true with a fresh start date is the re-sponsoring path
// for a pair that already has a (possibly ended) row.
type UpdateSponsorshipRequest struct {
	Type      string `json:"type" binding:"required" example:"Family co-support"`
	StartDate string `json:"startDate,omitempty" example:"2025-01-01"` // YYYY-MM-DD
	EndDate   string `json:"endDate,omitempty" example:""`             // YYYY-MM-DD, empty clears
	IsActive  bool   `json:"isActive"`
}

// ActiveSponsorshipsResponse lists a sponsor's active relationships.
type ActiveSponsorshipsResponse struct {
	Children []*models.ChildSponsorship `json:"children"`
	Staff    []*models.StaffSponsorship `json:"staff"`
}
