package models

import "gorm.io/gorm"

// UnassignedCourseName is the sentinel course games fall back to when no course
// is given. It is created lazily on first use.
const UnassignedCourseName = "unassigned"

// Course groups games for a class or cohort. The relationship to games is
// reference-only: a course never owns the games assigned to it.
type Course struct {
	gorm.Model
	Name        string `gorm:"size:255;not null"`
	Description string

	// The constraint lives on this side: gorm builds the courses→games FK from
	// the has-many field, and deleting a course must detach its games, never
	// delete them.
	Games []Game `gorm:"foreignKey:CourseID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
