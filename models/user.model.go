package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Login information
	Username string `gorm:"unique;not null;size:50" json:"username"` // Size limits character length
	Email    string `gorm:"not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Role & Status
	Role string `gorm:"default:'user';size:20" json:"role"` // user, staff

	// System Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations: a user optionally owns one company (seller accounts only)
	Company *Company `gorm:"foreignKey:UserID" json:"company,omitempty"`
}

// IsStaff reports whether the user holds the elevated back-office role.
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}
