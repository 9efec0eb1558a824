package models

import (
	"fmt"
	"time"
)

// Sponsor represents a person or organization providing support.
type Sponsor struct {
	ID                      int64      `json:"id" db:"id" example:"1"`
	FirstName               string     `json:"firstName" db:"first_name"`
	LastName                string     `json:"lastName" db:"last_name"`
	Gender                  string     `json:"gender" db:"gender" example:"Male"`
	Email                   string     `json:"email" db:"email" example:"sponsor@example.com"`
	SponsorshipTypeAtSignup string     `json:"sponsorshipTypeAtSignup" db:"sponsorship_type_at_signup"`
	JobTitle                string     `json:"jobTitle" db:"job_title"`
	Region                  string     `json:"region" db:"region"`
	Town                    string     `json:"town" db:"town"`
	Origin                  string     `json:"origin" db:"origin"`
	BusinessTelephone       string     `json:"businessTelephone" db:"business_telephone"`
	MobileTelephone         string     `json:"mobileTelephone" db:"mobile_telephone"`
	City                    string     `json:"city" db:"city"`
	StartDate               *time.Time `json:"startDate,omitempty" db:"start_date"`
	FirstStreetAddress      string     `json:"firstStreetAddress" db:"first_street_address"`
	SecondStreetAddress     string     `json:"secondStreetAddress" db:"second_street_address"`
	ZipCode                 string     `json:"zipCode" db:"zip_code"`
	IsDeparted              bool       `json:"isDeparted" db:"is_departed"`
	Comment                 string     `json:"comment" db:"comment"`
	CreatedAt               time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt               time.Time  `json:"updatedAt" db:"updated_at"`
}

// PrefixedID returns the display identifier derived from the primary key,
// e.g. "PS-042" for sponsor 42.
func (s *Sponsor) PrefixedID() string {
	return fmt.Sprintf("PS-0%d", s.ID)
}

// SponsorDeparture records why and when a sponsor ceased participating.
// A sponsor may accumulate several departure rows; the most recent one
// is the meaningful record.
type SponsorDeparture struct {
	ID              int64      `json:"id" db:"id"`
	SponsorID       int64      `json:"sponsorId" db:"sponsor_id"`
	DepartureDate   *time.Time `json:"departureDate,omitempty" db:"departure_date"`
	DepartureReason string     `json:"departureReason" db:"departure_reason"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}
