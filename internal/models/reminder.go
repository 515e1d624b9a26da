package models

import (
	"time"

	"github.com/terraincognita07/selene/internal/reminders"
	"gorm.io/gorm"
)

// Reminder is the stored reminder configuration. The core only ever reads
// these rows; creation and edits come through the API.
type Reminder struct {
	ID        string             `gorm:"primaryKey;size:36"`
	UserID    uint               `gorm:"not null;index"`
	Type      string             `gorm:"not null"`
	Schedule  reminders.Schedule `gorm:"serializer:json"`
	Enabled   bool               `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func IsValidReminderType(value string) bool {
	switch reminders.Type(value) {
	case reminders.TypePeriodStart, reminders.TypePeriodEnd, reminders.TypeFertileWindow,
		reminders.TypeMedication, reminders.TypeHydration, reminders.TypeCustom:
		return true
	default:
		return false
	}
}

func (reminder Reminder) ToConfig() reminders.Config {
	return reminders.Config{
		ID:       reminder.ID,
		Type:     reminders.Type(reminder.Type),
		Schedule: reminder.Schedule,
		Enabled:  reminder.Enabled,
	}
}
