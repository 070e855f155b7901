package models

import "gorm.io/gorm"

// Word is a single token of a category. The set of words under a category is
// the correct group for that category; order within the set carries no meaning.
type Word struct {
	gorm.Model
	CategoryID uint   `gorm:"not null;index"`
	Text       string `gorm:"column:word;size:255;not null"`
}
