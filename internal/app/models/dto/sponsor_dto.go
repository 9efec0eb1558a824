package dto

import "github.com/wkalungi/sponsorbase/internal/app/models"

// SponsorResponse augments the sponsor model with its display identifier.
type SponsorResponse struct {
	*models.Sponsor
	PrefixedID string `json:"prefixedId" example:"PS-042"`
}

// FromSponsor converts a models.Sponsor to a SponsorResponse
func FromSponsor(sponsor *models.Sponsor) SponsorResponse {
	if sponsor == nil {
		return SponsorResponse{}
	}
	return SponsorResponse{
		Sponsor:    sponsor,
		PrefixedID: sponsor.PrefixedID(),
	}
}

// FromSponsors converts a slice of sponsors to responses
func FromSponsors(sponsors []*models.Sponsor) []SponsorResponse {
	out := make([]SponsorResponse, 0, len(sponsors))
	for _, s := range sponsors {
		out = append(out, FromSponsor(s))
	}
	return out
}

// SponsorListResponse represents the response for a paginated list of sponsors
type SponsorListResponse struct {
	Sponsors   []SponsorResponse `json:"sponsors"`
	Pagination PaginationInfo    `json:"pagination"`
}

// DepartSponsorRequest records a sponsor's exit from the programme.
type DepartSponsorRequest struct {
	DepartureReason string `json:"departureReason" binding:"required"`
	DepartureDate   string `json:"departureDate,omitempty" example:"2024-06-01"` // YYYY-MM-DD
}
