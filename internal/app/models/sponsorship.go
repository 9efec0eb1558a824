package models

import "time"

// ChildSponsorship links a sponsor to a child. At most one row may exist
// per (sponsor, child) pair; re-sponsoring the same pair updates the
// existing row rather than inserting a new one.
type ChildSponsorship struct {
	ID        int64           `json:"id" db:"id"`
	SponsorID int64           `json:"sponsorId" db:"sponsor_id"`
	ChildID   int64           `json:"childId" db:"child_id"`
	Type      SponsorshipType `json:"type" db:"sponsorship_type"`
	StartDate *time.Time      `json:"startDate,omitempty" db:"start_date"`
	EndDate   *time.Time      `json:"endDate,omitempty" db:"end_date"`
	IsActive  bool            `json:"isActive" db:"is_active"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// StaffSponsorship links a sponsor to a staff member, with the same
// one-row-per-pair rule as ChildSponsorship.
type StaffSponsorship struct {
	ID        int64           `json:"id" db:"id"`
	SponsorID int64           `json:"sponsorId" db:"sponsor_id"`
	StaffID   int64           `json:"staffId" db:"staff_id"`
	Type      SponsorshipType `json:"type" db:"sponsorship_type"`
	StartDate *time.Time      `json:"startDate,omitempty" db:"start_date"`
	EndDate   *time.Time      `json:"endDate,omitempty" db:"end_date"`
	IsActive  bool            `json:"isActive" db:"is_active"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}
