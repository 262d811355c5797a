package models

import "time"

const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

const (
	GenderFemale = "F"
	GenderMale   = "M"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	Gender       string    `gorm:"not null"`
	DateOfBirth  time.Time `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	FcmToken     string
	Role         string    `gorm:"not null;default:participant"`
	CreatedAt    time.Time `gorm:"not null"`
}
