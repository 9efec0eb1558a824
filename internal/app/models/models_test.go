package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSponsorshipTypeValid(t *testing.T) {
	t.Run("should accept every known type", func(t *testing.T) {
		known := []SponsorshipType{
			SponsorshipChildFullSupport,
			SponsorshipChildCoSupport,
			SponsorshipFamilyFullSupport,
			SponsorshipFamilyCoSupport,
			SponsorshipGeneralSupport,
		}
		for _, sType := range known {
			assert.True(t, sType.Valid(), "type %q", sType)
		}
	})

	t.Run("should reject unknown and empty values", func(t *testing.T) {
		assert.False(t, SponsorshipType("Platinum support").Valid())
		assert.False(t, SponsorshipType("child full support").Valid(), "matching is case sensitive")
		assert.False(t, SponsorshipType("").Valid())
	})
}

func TestSponsorPrefixedID(t *testing.T) {
	t.Run("should derive the display identifier from the primary key", func(t *testing.T) {
		assert.Equal(t, "PS-042", (&Sponsor{ID: 42}).PrefixedID())
		assert.Equal(t, "PS-07", (&Sponsor{ID: 7}).PrefixedID())
		assert.Equal(t, "PS-0315", (&Sponsor{ID: 315}).PrefixedID())
	})
}
