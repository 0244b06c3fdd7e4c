package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID    string `gorm:"uniqueIndex;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string

	// Pregnancy profile. DueDate is derived from PregnancyStart (40 weeks)
	// when the client does not supply it.
	PregnancyStart time.Time
	DueDate        time.Time

	ProfilePicture string
	Onboarded      bool
	Disabled       bool

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
