package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `gorm:"not null;default:student" json:"role"`

	// Approved gates staff logins; students and admins are created
	// approved. No column default: GORM drops zero-value fields that
	// carry one from the INSERT, which would silently approve new staff.
	Approved bool `gorm:"not null" json:"approved"`

	EmailVerified    bool   `gorm:"not null;default:false" json:"emailVerified"`
	VerificationCode string `json:"-"`

	ResetToken  string     `gorm:"index" json:"-"`
	ResetExpiry *time.Time `json:"-"`

	Orders        []Order        `json:"-"`
	Notifications []Notification `json:"-"`
	Feedbacks     []Feedback     `json:"-"`
}
