package models

import "gorm.io/gorm"

// Category is one correct grouping of words within a game. Categories are
// ordered by difficulty, not by insertion.
type Category struct {
	gorm.Model
	GameID      uint   `gorm:"not null;index"`
	Label       string `gorm:"column:category;size:255;not null"`
	Difficulty  int    `gorm:"not null"`
	Explanation string `gorm:"not null;default:'No explanation provided'"`

	Words []Word `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}
