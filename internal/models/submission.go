package models

import (
	"time"

	"gorm.io/datatypes"
)

// Submission is one recorded playthrough of a game: the sequence of guess
// groups the player tried, the time spent before each guess, and the outcome.
// Submissions are append-only; there is no update or delete path.
type Submission struct {
	ID     uint `gorm:"primaryKey"`
	GameID uint `gorm:"not null;index"`
	Game   Game `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// Guesses[i] is the set of words submitted together as attempt i.
	// TimeTaken[i] is the seconds spent before submitting Guesses[i]; the two
	// slices are positionally aligned and equal in length (enforced at
	// ingestion).
	Guesses   datatypes.JSONSlice[[]string] `gorm:"not null"`
	TimeTaken datatypes.JSONSlice[float64]  `gorm:"not null"`

	IsWon       bool      `gorm:"not null;default:false"`
	SubmittedAt time.Time `gorm:"autoCreateTime"`
}
