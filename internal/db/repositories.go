package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Profiles    *ProfileRepository
	DailyLogs   *DailyLogRepository
	Predictions *PredictionRepository
	Reminders   *ReminderRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Profiles:    NewProfileRepository(database),
		DailyLogs:   NewDailyLogRepository(database),
		Predictions: NewPredictionRepository(database),
		Reminders:   NewReminderRepository(database),
	}
}
