package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tickpanel/database/model"
	"tickpanel/util/common"
)

// TokenTTL is the lifetime of an issued bearer token.
const TokenTTL = time.Hour

// TokenClaims is the identity a bearer token carries.
type TokenClaims struct {
	UserId   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, stateless bearer tokens.
// There is no server-side revocation: possession of a valid, unexpired
// token is authentication.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue signs a token embedding the user's id, username and role,
// expiring TokenTTL after issuance. With no secret configured it fails
// closed rather than signing with a predictable default.
func (s *TokenService) Issue(user *model.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretMissing
	}
	now := s.now()
	claims := TokenClaims{
		UserId:   user.Id,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Malformed
// tokens, bad signatures and expired tokens all fail verification.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrSecretMissing
	}
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewErrorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, common.NewError("invalid token")
	}
	return claims, nil
}
