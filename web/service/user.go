package service

import (
	"time"

	"tickpanel/database"
	"tickpanel/database/model"
)

// UserService is the persistence boundary for user records.
type UserService struct{}

// FindByEmail looks a user up by lowercased email. A missing user is
// (nil, nil), not an error.
func (s *UserService) FindByEmail(email string) (*model.User, error) {
	return s.findOne("email = ?", email)
}

func (s *UserService) FindByUsername(username string) (*model.User, error) {
	return s.findOne("username = ?", username)
}

func (s *UserService) FindById(id string) (*model.User, error) {
	return s.findOne("id = ?", id)
}

// FindByResetToken looks a user up by reset-token digest, requiring the
// stored expiry to still be in the future. Unknown digest and expired
// digest are both (nil, nil); the caller cannot tell which check failed.
func (s *UserService) FindByResetToken(digest string, now time.Time) (*model.User, error) {
	return s.findOne("reset_token_hash = ? AND reset_token_expires_at > ?", digest, now)
}

func (s *UserService) findOne(query string, args ...any) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).Where(query, args...).First(user).Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(user *model.User) error {
	return database.GetDB().Create(user).Error
}

// SetResetToken stores the digest and expiry of an outstanding reset
// token. A later call overwrites the previous token: at most one is
// valid per user.
func (s *UserService) SetResetToken(userId, digest string, expiresAt time.Time) error {
	return database.GetDB().Model(model.User{}).
		Where("id = ?", userId).
		Updates(map[string]any{
			"reset_token_hash":       digest,
			"reset_token_expires_at": expiresAt,
		}).Error
}

// ClearResetToken removes the outstanding reset token, if any.
func (s *UserService) ClearResetToken(userId string) error {
	return database.GetDB().Model(model.User{}).
		Where("id = ?", userId).
		Updates(map[string]any{
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		}).Error
}

// UpdatePassword stores a new password hash and clears the reset-token
// fields in the same update, so a consumed reset token cannot be
// replayed.
func (s *UserService) UpdatePassword(userId, passwordHash string) error {
	return database.GetDB().Model(model.User{}).
		Where("id = ?", userId).
		Updates(map[string]any{
			"password_hash":          passwordHash,
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		}).Error
}

// ListClients returns the public profiles of all client-role users.
func (s *UserService) ListClients() ([]model.Profile, error) {
	db := database.GetDB()
	var users []model.User
	if err := db.Model(model.User{}).
		Where("role = ?", model.RoleClient).
		Order("username ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	profiles := make([]model.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}
