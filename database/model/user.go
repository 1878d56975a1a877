package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Clients only ever see their own tickets; admins see all.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
	RoleUser   = "user"
)

// User is an identity record. The password is stored only as a bcrypt
// hash. ResetTokenHash and ResetTokenExpiresAt are either both set
// (an outstanding reset link) or both null.
type User struct {
	Id                  string     `json:"id" gorm:"primaryKey;size:36"`
	Username            string     `json:"username" gorm:"uniqueIndex;not null"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash        string     `json:"-" gorm:"column:password_hash;not null"`
	Role                string     `json:"role" gorm:"not null;default:user"`
	ResetTokenHash      *string    `json:"-" gorm:"index"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}

// Profile is the public view of a user, safe to return to callers.
type Profile struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{
		Id:       u.Id,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
