package reminders

import (
	"time"

	"github.com/terraincognita07/selene/internal/cycle"
)

type Type string

const (
	TypePeriodStart   Type = "period_start"
	TypePeriodEnd     Type = "period_end"
	TypeFertileWindow Type = "fertile_window"
	TypeMedication    Type = "medication"
	TypeHydration     Type = "hydration"
	TypeCustom        Type = "custom"
)

type Frequency string

const (
	FrequencyDaily Frequency = "daily"
	FrequencyOnce  Frequency = "once"
)

const DefaultDaysBefore = 3

// Schedule configures when a reminder should fire. Time is informational
// metadata for the delivery layer and plays no role in the due decision.
type Schedule struct {
	Time          string    `json:"time,omitempty"`
	DaysBefore    *int      `json:"days_before,omitempty"`
	Frequency     Frequency `json:"frequency,omitempty"`
	CustomMessage string    `json:"custom_message,omitempty"`
}

type Config struct {
	ID       string
	Type     Type
	Schedule Schedule
	Enabled  bool
}

// DeliveredFunc reports whether a reminder has already been delivered on the
// given day. Callers needing at-most-once delivery inject one; without it
// repeated sweeps within the same due window fire again.
type DeliveredFunc func(reminderID string, day time.Time) bool

// Evaluate decides, by calendar date alone, whether the reminder fires today.
// Habit reminders (medication, hydration) never need a prediction; cycle
// reminders without one are silently not due. Custom reminders carry no
// built-in date rule and are never marked due here.
func Evaluate(config Config, prediction *cycle.Result, today time.Time) bool {
	if !config.Enabled {
		return false
	}

	switch config.Type {
	case TypeMedication, TypeHydration:
		frequency := config.Schedule.Frequency
		if frequency == "" {
			frequency = FrequencyDaily
		}
		return frequency == FrequencyDaily
	}

	if prediction == nil {
		return false
	}

	daysBefore := DefaultDaysBefore
	if config.Schedule.DaysBefore != nil {
		daysBefore = *config.Schedule.DaysBefore
	}

	switch config.Type {
	case TypePeriodStart:
		return sameCalendarDay(today, prediction.NextPeriodStart.AddDate(0, 0, -daysBefore))
	case TypePeriodEnd:
		return sameCalendarDay(today, prediction.NextPeriodEnd.AddDate(0, 0, -daysBefore))
	case TypeFertileWindow:
		if prediction.FertilityWindowStart.IsZero() {
			return false
		}
		return sameCalendarDay(today, prediction.FertilityWindowStart.AddDate(0, 0, -daysBefore))
	default:
		return false
	}
}

// EvaluateWithDelivery suppresses an otherwise due reminder when the injected
// predicate says it already went out today.
func EvaluateWithDelivery(config Config, prediction *cycle.Result, today time.Time, delivered DeliveredFunc) bool {
	if !Evaluate(config, prediction, today) {
		return false
	}
	if delivered != nil && delivered(config.ID, today) {
		return false
	}
	return true
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
