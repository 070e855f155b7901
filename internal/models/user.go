package models

import "gorm.io/gorm"

// User represents an account able to manage games. Players submitting guesses
// are anonymous; users exist only to gate the admin surface.
type User struct {
	gorm.Model
	Nickname     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`
}
