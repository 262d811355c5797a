package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	SelfReports    *SelfReportRepository
	SelfReportLogs *SelfReportLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		SelfReports:    NewSelfReportRepository(database),
		SelfReportLogs: NewSelfReportLogRepository(database),
	}
}
