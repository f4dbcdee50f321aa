package models

import (
	"errors"
	"time"
)

// ErrUserNotFound is returned by stores when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User is the single persisted entity. PasswordHash and the reset fields are
// never serialized; the reset fields are carried for a future flow and no code
// path reads them yet.
type User struct {
	ID                  string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name                string     `json:"name" gorm:"not null"`
	LastName            string     `json:"lastName" gorm:"not null"`
	MotherLastName      *string    `json:"motherLastName,omitempty"`
	PhoneNumber         string     `json:"phoneNumber" gorm:"uniqueIndex:users_phone_number_key;not null"`
	Email               string     `json:"email" gorm:"uniqueIndex:users_email_key;not null"`
	Username            string     `json:"username" gorm:"uniqueIndex:users_username_key;not null"`
	PasswordHash        string     `json:"-" gorm:"column:password_hash;not null"`
	Role                string     `json:"role" gorm:"not null;default:user"`
	IsActive            bool       `json:"isActive" gorm:"not null;default:true"`
	LastLogin           *time.Time `json:"lastLogin,omitempty"`
	ResetTokenHash      *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt" gorm:"not null;default:now()"`
	UpdatedAt           time.Time  `json:"updatedAt" gorm:"not null;default:now()"`
}

func (User) TableName() string {
	return "users"
}
