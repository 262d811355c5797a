package services

import (
	"strings"
	"time"

	"github.com/sosw-app/sosw/internal/models"
)

type ReportRepository interface {
	Create(report *models.SelfReport) error
}

type ReportLogRepository interface {
	Append(entry *models.SelfReportLog) error
}

type ReportService struct {
	reports ReportRepository
	logs    ReportLogRepository
}

func NewReportService(reports ReportRepository, logs ReportLogRepository) *ReportService {
	return &ReportService{reports: reports, logs: logs}
}

// Insert validates and persists a self-report, then appends the matching
// audit log entry referencing the new report.
func (service *ReportService) Insert(userID uint, input SelfReportInput, voluntary bool, now time.Time) (models.SelfReport, map[string]string, error) {
	if fieldErrors := ValidateSelfReport(input); fieldErrors != nil {
		return models.SelfReport{}, fieldErrors, nil
	}

	report := models.SelfReport{
		UserID:        userID,
		Timestamp:     input.Timestamp,
		StressLevel:   *input.StressLevel,
		Valence:       *input.Valence,
		Arousal:       *input.Arousal,
		Activity:      strings.TrimSpace(input.Activity),
		Location:      strings.TrimSpace(input.Location),
		SocialContext: strings.TrimSpace(input.SocialContext),
		CreatedAt:     now,
	}
	if err := service.reports.Create(&report); err != nil {
		return models.SelfReport{}, nil, err
	}

	reportID := report.ID
	entry := models.SelfReportLog{
		Timestamp:    input.Timestamp,
		Voluntary:    voluntary,
		SelfReportID: &reportID,
		UserID:       userID,
	}
	if err := service.logs.Append(&entry); err != nil {
		return models.SelfReport{}, nil, err
	}

	return report, nil, nil
}

// LogPrompt records a dispatched EMA prompt. Prompts have no report yet,
// so the entry carries no self-report reference.
func (service *ReportService) LogPrompt(userID uint, now time.Time) error {
	entry := models.SelfReportLog{
		Timestamp: now.UnixMilli(),
		Voluntary: false,
		UserID:    userID,
	}
	return service.logs.Append(&entry)
}
