package models

import (
	"time"

	"github.com/terraincognita07/selene/internal/cycle"
)

// DailyLog is one observation for one calendar day. Flow is empty when the
// day was logged without a flow value.
type DailyLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_daily_logs_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_daily_logs_user_date"`
	Flow      string    `gorm:"not null;default:''"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidFlow(value string) bool {
	switch value {
	case "", cycle.FlowNone, cycle.FlowLight, cycle.FlowMedium, cycle.FlowHeavy, cycle.FlowSpotting:
		return true
	default:
		return false
	}
}

func (entry DailyLog) ToLogEntry() cycle.LogEntry {
	return cycle.LogEntry{Date: entry.Date, Flow: entry.Flow}
}
