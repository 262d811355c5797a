package db

import (
	"github.com/sosw-app/sosw/internal/models"
	"gorm.io/gorm"
)

type SelfReportLogRepository struct {
	database *gorm.DB
}

func NewSelfReportLogRepository(database *gorm.DB) *SelfReportLogRepository {
	return &SelfReportLogRepository{database: database}
}

func (repo *SelfReportLogRepository) Append(entry *models.SelfReportLog) error {
	return repo.database.Create(entry).Error
}

func (repo *SelfReportLogRepository) ListByUserID(userID uint) ([]models.SelfReportLog, error) {
	entries := make([]models.SelfReportLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
