// Package crypto provides password hashing and reset-token primitives.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ResetTokenTTL is how long an emailed reset link stays valid.
const ResetTokenTTL = time.Hour

// HashPassword generates a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash verifies the given password against a bcrypt hash.
// A mismatch is reported as (false, nil); any other failure is an
// infrastructure error, not an authentication outcome.
func CheckPasswordHash(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

// GenerateResetToken creates a single-use password-reset token. The
// plaintext is 32 random bytes, URL-safe encoded, and is never stored:
// only its SHA-256 digest and the expiry go to the database.
func GenerateResetToken(now time.Time) (plain string, digest string, expiresAt time.Time, err error) {
	var buf [32]byte
	if _, err = rand.Read(buf[:]); err != nil {
		return "", "", time.Time{}, err
	}
	plain = base64.RawURLEncoding.EncodeToString(buf[:])
	return plain, HashResetToken(plain), now.Add(ResetTokenTTL), nil
}

// HashResetToken returns the hex SHA-256 digest of a plaintext reset
// token, suitable for equality lookup against the stored digest.
func HashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
