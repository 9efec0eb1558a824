package models

import "time"

// Child defines the child model based on the 'children' table.
// The field order up to CompiledBy mirrors the 37-column registration
// sheet used for bulk imports.
type Child struct {
	ID                   int64      `json:"id" db:"id" example:"1"`
	FullName             string     `json:"fullName" db:"full_name" example:"Nakato Grace"`
	PreferredName        string     `json:"preferredName" db:"preferred_name"`
	Residence            string     `json:"residence" db:"residence"`
	Tribe                string     `json:"tribe" db:"tribe"`
	Gender               string     `json:"gender" db:"gender" example:"Female"`
	DateOfBirth          *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Weight               *float64   `json:"weight,omitempty" db:"weight"`
	Height               *float64   `json:"height,omitempty" db:"height"`
	Avatar               string     `json:"avatar,omitempty" db:"avatar"`
	Interest             string     `json:"interest" db:"interest"`
	InSchool             *bool      `json:"inSchool,omitempty" db:"in_school"`
	SchoolName           string     `json:"schoolName" db:"school_name"`
	EducationLevel       string     `json:"educationLevel" db:"education_level"`
	Class                string     `json:"class" db:"class"`
	BestSubject          string     `json:"bestSubject" db:"best_subject"`
	IsSponsored          *bool      `json:"isSponsored,omitempty" db:"is_sponsored"`
	SponsorshipType      string     `json:"sponsorshipType" db:"sponsorship_type"`
	FatherName           string     `json:"fatherName" db:"father_name"`
	FatherAlive          *bool      `json:"fatherAlive,omitempty" db:"father_alive"`
	FatherDescription    string     `json:"fatherDescription" db:"father_description"`
	MotherName           string     `json:"motherName" db:"mother_name"`
	MotherAlive          *bool      `json:"motherAlive,omitempty" db:"mother_alive"`
	MotherDescription    string     `json:"motherDescription" db:"mother_description"`
	Guardian             string     `json:"guardian" db:"guardian"`
	GuardianContact      string     `json:"guardianContact" db:"guardian_contact"`
	GuardianRelationship string     `json:"guardianRelationship" db:"guardian_relationship"`
	Siblings             string     `json:"siblings" db:"siblings"`
	BackgroundInfo       string     `json:"backgroundInfo" db:"background_info"`
	HealthStatus         string     `json:"healthStatus" db:"health_status"`
	Responsibility       string     `json:"responsibility" db:"responsibility"`
	FaithRelationship    string     `json:"faithRelationship" db:"faith_relationship"`
	Religion             string     `json:"religion" db:"religion"`
	PrayerRequest        string     `json:"prayerRequest" db:"prayer_request"`
	YearEnrolled         *int       `json:"yearEnrolled,omitempty" db:"year_enrolled"`
	IsDeparted           *bool      `json:"isDeparted,omitempty" db:"is_departed"`
	StaffComment         string     `json:"staffComment" db:"staff_comment"`
	CompiledBy           string     `json:"compiledBy" db:"compiled_by"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}
