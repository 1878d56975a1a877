package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickpanel/util/random"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	samples := []string{
		"secret",          // boundary: exactly 6 chars
		"pässwörd",        // unicode
		"пароль123",       // cyrillic
		"密码は秘密です",         // cjk
		"  spaces  ",      // whitespace kept
		"!@#$%^&*()_+-=[", // symbols
	}
	for i := 0; i < 100; i++ {
		samples = append(samples, random.Seq(6+i%20))
	}

	for _, password := range samples {
		hash, err := HashPassword(password)
		require.NoError(t, err)

		match, err := CheckPasswordHash(hash, password)
		require.NoError(t, err)
		assert.True(t, match, "password %q should verify against its own hash", password)

		match, err = CheckPasswordHash(hash, password+"x")
		require.NoError(t, err)
		assert.False(t, match)
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// per-hash random salt: identical plaintexts, different hashes
	assert.NotEqual(t, first, second)
}

func TestCheckPasswordHashCorruptHash(t *testing.T) {
	match, err := CheckPasswordHash("not-a-bcrypt-hash", "whatever")
	assert.False(t, match)
	assert.Error(t, err, "a corrupt hash is an infrastructure error, not a mismatch")
}

func TestGenerateResetToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	plain, digest, expiresAt, err := GenerateResetToken(now)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(plain)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	assert.Equal(t, HashResetToken(plain), digest)
	_, err = hex.DecodeString(digest)
	assert.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	other, otherDigest, _, err := GenerateResetToken(now)
	require.NoError(t, err)
	assert.NotEqual(t, plain, other)
	assert.NotEqual(t, digest, otherDigest)
}
