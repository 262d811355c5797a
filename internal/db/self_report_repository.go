package db

import (
	"github.com/sosw-app/sosw/internal/models"
	"gorm.io/gorm"
)

type SelfReportRepository struct {
	database *gorm.DB
}

func NewSelfReportRepository(database *gorm.DB) *SelfReportRepository {
	return &SelfReportRepository{database: database}
}

func (repo *SelfReportRepository) Create(report *models.SelfReport) error {
	return repo.database.Create(report).Error
}

func (repo *SelfReportRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.SelfReport{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
