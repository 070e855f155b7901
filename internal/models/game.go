package models

import "gorm.io/gorm"

// SyntaxHighlighting selects how the frontend renders the words of a game.
type SyntaxHighlighting string

const (
	SyntaxPython SyntaxHighlighting = "python"
	SyntaxJava   SyntaxHighlighting = "java"
	SyntaxC      SyntaxHighlighting = "c"
	SyntaxNone   SyntaxHighlighting = "none"
)

// ValidSyntaxHighlighting reports whether s is one of the accepted values.
func ValidSyntaxHighlighting(s SyntaxHighlighting) bool {
	switch s {
	case SyntaxPython, SyntaxJava, SyntaxC, SyntaxNone:
		return true
	}
	return false
}

// Game represents one Connections puzzle: a fixed grid of categories and words,
// identified publicly by its 4-letter game code.
type Game struct {
	gorm.Model
	GameCode           string             `gorm:"size:4;uniqueIndex;not null"`
	Title              string             `gorm:"size:255;not null"`
	Author             string             `gorm:"size:255;not null;default:'Unknown Author'"`
	SyntaxHighlighting SyntaxHighlighting `gorm:"size:20;not null;default:'python'"`
	NumCategories      int                `gorm:"not null"`
	WordsPerCategory   int                `gorm:"not null"`
	Published          bool               `gorm:"not null;default:false"`
	RelevantInfo       string

	// A game belongs to at most one course. Deleting the course detaches the
	// game rather than deleting it; the SET NULL action is declared on
	// Course.Games, the side the FK is built from.
	CourseID *uint   `gorm:"index"`
	Course   *Course `gorm:"foreignKey:CourseID"`

	Categories []Category `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
