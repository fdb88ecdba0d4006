package models

import "time"

// AnonymousCommentName is used when a comment is posted without a name.
const AnonymousCommentName = "Anonymous"

// Comment is attached to a workout by its external catalog identifier.
// WorkoutID is an opaque reference, not a foreign key into local storage.
type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"type:text;not null"`
	PostedAt  time.Time `gorm:"not null;index"`
	WorkoutID string    `gorm:"not null;index"`
}
