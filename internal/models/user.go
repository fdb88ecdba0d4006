package models

import "time"

type User struct {
	Username     string    `gorm:"primaryKey"`
	PasswordHash string    `gorm:"not null"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	Birthday     time.Time `gorm:"type:date;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
