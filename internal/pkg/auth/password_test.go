package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("should verify the original password against its hash", func(t *testing.T) {
		hash, err := HashPassword("s3cret-passphrase")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-passphrase", hash)
		assert.True(t, CheckPassword(hash, "s3cret-passphrase"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		hash, err := HashPassword("s3cret-passphrase")
		require.NoError(t, err)
		assert.False(t, CheckPassword(hash, "guess"))
		assert.False(t, CheckPassword(hash, ""))
	})

	t.Run("should reject a malformed hash", func(t *testing.T) {
		assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
	})
}
