package models

import "time"

// Goal is the single weight-tracking record owned by one account.
// The row is keyed by the owner's username; deleting the account
// removes it via the foreign-key cascade.
type Goal struct {
	Username      string   `gorm:"primaryKey"`
	CurrentWeight float64  `gorm:"not null"`
	TargetWeight  *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
