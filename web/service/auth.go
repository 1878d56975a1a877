package service

import (
	"regexp"
	"strings"
	"time"

	"tickpanel/config"
	"tickpanel/database"
	"tickpanel/database/model"
	"tickpanel/logger"
	"tickpanel/util/common"
	"tickpanel/util/crypto"
)

// Mirrors the classic "anything@anything.anything" check; real
// deliverability is proven by the reset mail, not the syntax.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validRoles = map[string]bool{
	model.RoleAdmin:  true,
	model.RoleClient: true,
	model.RoleUser:   true,
}

// AuthService orchestrates registration, login and the password-reset
// flow. It is stateless; every call is an independent request.
type AuthService struct {
	users       UserService
	tokens      *TokenService
	mail        MailSender
	frontendURL string
	now         func() time.Time
}

func NewAuthService(cfg *config.Config, mail MailSender) *AuthService {
	return &AuthService{
		tokens:      NewTokenService(cfg.JWTSecret),
		mail:        mail,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		now:         time.Now,
	}
}

// Tokens exposes the token service for the auth middleware.
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// Register validates and creates a new user, returning the public
// profile. A username collision is reported even when the email also
// collides; a duplicate-key race from the store is translated into the
// same conflict outcome.
func (s *AuthService) Register(username, email, password, role string) (*model.Profile, error) {
	if username == "" || email == "" || password == "" {
		return nil, newValidationError("", "All fields are required")
	}
	email = strings.ToLower(email)
	if !emailRegexp.MatchString(email) {
		return nil, newValidationError("email", "Invalid email format")
	}
	if len(password) < 6 {
		return nil, newValidationError("password", "Password must be at least 6 characters long")
	}
	if len(username) < 3 {
		return nil, newValidationError("username", "Username must be at least 3 characters long")
	}
	if role == "" {
		role = model.RoleUser
	}
	if !validRoles[role] {
		return nil, newValidationError("role", "Unknown role")
	}

	byEmail, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	byUsername, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if byUsername != nil {
		return nil, &ConflictError{Field: "username"}
	}
	if byEmail != nil {
		return nil, &ConflictError{Field: "email"}
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		// The store's uniqueness constraint closes the lookup race.
		if database.IsDuplicate(err, "username") {
			return nil, &ConflictError{Field: "username"}
		}
		if database.IsDuplicate(err, "email") {
			return nil, &ConflictError{Field: "email"}
		}
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// email and a wrong password produce the identical ErrInvalidCredentials
// so accounts cannot be enumerated. A missing signing secret surfaces
// as ErrSecretMissing, distinct from bad credentials.
func (s *AuthService) Login(email, password string) (string, *model.Profile, error) {
	if email == "" || password == "" {
		return "", nil, newValidationError("", "Email and password are required")
	}
	email = strings.ToLower(email)
	if !emailRegexp.MatchString(email) {
		return "", nil, newValidationError("email", "Invalid email format")
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	match, err := crypto.CheckPasswordHash(user.PasswordHash, password)
	if err != nil {
		return "", nil, err
	}
	if !match {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	profile := user.Profile()
	return token, &profile, nil
}

// ForgotPassword starts the reset flow. Whether or not the account
// exists the outcome is the same, except when the reset mail for an
// existing account fails to send: then the stored token is rolled back
// and ErrMailDelivery is returned, leaking only mail-system health.
func (s *AuthService) ForgotPassword(email string) error {
	if email == "" {
		return newValidationError("email", "Email is required")
	}

	user, err := s.users.FindByEmail(strings.ToLower(email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	plain, digest, expiresAt, err := crypto.GenerateResetToken(s.now())
	if err != nil {
		return err
	}
	if err := s.users.SetResetToken(user.Id, digest, expiresAt); err != nil {
		return err
	}

	resetURL := s.frontendURL + "/reset-password?token=" + plain
	if err := s.mail.SendPasswordReset(user.Email, resetURL); err != nil {
		logger.Warning("password reset mail failed:", err)
		if clearErr := s.users.ClearResetToken(user.Id); clearErr != nil {
			logger.Error("failed to roll back reset token:", clearErr)
		}
		return ErrMailDelivery
	}
	return nil
}

// VerifyResetToken checks a plaintext reset token from an emailed link.
// Unknown, mismatched and expired tokens all report the same failure.
func (s *AuthService) VerifyResetToken(token string) error {
	if token == "" {
		return newValidationError("token", "Reset token is required")
	}
	user, err := s.users.FindByResetToken(crypto.HashResetToken(token), s.now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}
	return nil
}

// ResetPassword consumes a reset token and stores the new password.
// The token fields are cleared in the same update, so the token is
// single-use. The confirmation mail is fire-and-forget.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" || newPassword == "" {
		return newValidationError("", "Token and new password are required")
	}
	if len(newPassword) < 6 {
		return newValidationError("password", "Password must be at least 6 characters long")
	}

	user, err := s.users.FindByResetToken(crypto.HashResetToken(token), s.now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(user.Id, hash); err != nil {
		return err
	}

	go func(email string) {
		defer common.Recover("reset confirmation mail")
		if err := s.mail.SendResetConfirmation(email); err != nil {
			logger.Warning("reset confirmation mail failed:", err)
		}
	}(user.Email)

	return nil
}
