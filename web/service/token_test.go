package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickpanel/database/model"
)

func testUser() *model.User {
	return &model.User{
		Id:       "u-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     model.RoleClient,
	}
}

func TestTokenIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserId)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleClient, claims.Role)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenExpiry(t *testing.T) {
	svc := NewTokenService("test-secret")
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-one").Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenService("secret-two").Verify(token)
	assert.Error(t, err)
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService("test-secret")
	for _, garbage := range []string{"", "abc", "a.b.c", "a.b"} {
		_, err := svc.Verify(garbage)
		assert.Error(t, err, "token %q should not verify", garbage)
	}
}

func TestTokenFailsClosedWithoutSecret(t *testing.T) {
	svc := NewTokenService("")

	_, err := svc.Issue(testUser())
	assert.ErrorIs(t, err, ErrSecretMissing)

	_, err = svc.Verify("whatever")
	assert.ErrorIs(t, err, ErrSecretMissing)
}
