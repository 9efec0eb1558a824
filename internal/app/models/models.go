package models

// SponsorshipType classifies the kind of support a sponsor provides.
type SponsorshipType string

const (
	SponsorshipChildFullSupport  SponsorshipType = "Child full support"
	SponsorshipChildCoSupport    SponsorshipType = "Child co-support"
	SponsorshipFamilyFullSupport SponsorshipType = "Family full support"
	SponsorshipFamilyCoSupport   SponsorshipType = "Family co-support"
	SponsorshipGeneralSupport    SponsorshipType = "General support"
)

// Valid reports whether t is one of the known sponsorship types.
func (t SponsorshipType) Valid() bool {
	switch t {
	case SponsorshipChildFullSupport,
		SponsorshipChildCoSupport,
		SponsorshipFamilyFullSupport,
		SponsorshipFamilyCoSupport,
		SponsorshipGeneralSupport:
		return true
	}
	return false
}
