package reminders

import (
	"fmt"

	"github.com/terraincognita07/selene/internal/cycle"
)

const messageDateFormat = "Jan 2"

// ComposeMessage renders the delivery text for a firing reminder. A custom
// message always wins, verbatim.
func ComposeMessage(config Config, prediction *cycle.Result) string {
	if config.Schedule.CustomMessage != "" {
		return config.Schedule.CustomMessage
	}

	switch config.Type {
	case TypeMedication:
		return "Time to take your medication."
	case TypeHydration:
		return "Time to drink some water."
	}

	if prediction == nil {
		return "You have a reminder for today."
	}

	switch config.Type {
	case TypePeriodStart:
		return fmt.Sprintf("Your period is expected to start around %s.", prediction.NextPeriodStart.Format(messageDateFormat))
	case TypePeriodEnd:
		return fmt.Sprintf("Your period is expected to end around %s.", prediction.NextPeriodEnd.Format(messageDateFormat))
	case TypeFertileWindow:
		return fmt.Sprintf("Your fertile window is expected to open around %s.", prediction.FertilityWindowStart.Format(messageDateFormat))
	default:
		return "You have a reminder for today."
	}
}
