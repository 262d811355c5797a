package models

// SelfReportLog is an append-only audit row for EMA prompts and responses.
// Voluntary marks user-initiated reports; prompted dispatches store false.
// SelfReportID stays nil for prompts and is cleared if the report is deleted.
type SelfReportLog struct {
	ID           uint  `gorm:"primaryKey"`
	Timestamp    int64 `gorm:"not null;index"`
	Voluntary    bool  `gorm:"not null"`
	SelfReportID *uint
	UserID       uint `gorm:"not null;index"`
}
