package models

import "time"

// SelfReport is an EMA entry submitted by a participant. Immutable once created.
type SelfReport struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	Timestamp     int64     `gorm:"not null;index"`
	StressLevel   int       `gorm:"not null"`
	Valence       int       `gorm:"not null"`
	Arousal       int       `gorm:"not null"`
	Activity      string
	Location      string
	SocialContext string
	CreatedAt     time.Time `gorm:"not null"`
}
