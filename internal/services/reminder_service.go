package services

import (
	"context"
	"log"
	"time"

	"github.com/terraincognita07/selene/internal/cycle"
	"github.com/terraincognita07/selene/internal/models"
	"github.com/terraincognita07/selene/internal/reminders"
)

const reminderSubject = "Selene reminder"

type ReminderReader interface {
	ListEnabled() ([]models.Reminder, error)
}

type LatestPredictionReader interface {
	LatestByUser(userID uint) (models.Prediction, bool, error)
}

type RecipientReader interface {
	FindByID(userID uint) (models.User, error)
}

type DueCheck struct {
	ReminderID string
	UserID     uint
	Due        bool
	Message    string
}

type ReminderService struct {
	reminders   ReminderReader
	predictions LatestPredictionReader
	recipients  RecipientReader
	transport   Transport
	location    *time.Location
	deliveryLog *DeliveryLog
}

func NewReminderService(reminderStore ReminderReader, predictions LatestPredictionReader, recipients RecipientReader, transport Transport, location *time.Location) *ReminderService {
	if location == nil {
		location = time.UTC
	}
	if transport == nil {
		transport = LogTransport{}
	}
	return &ReminderService{
		reminders:   reminderStore,
		predictions: predictions,
		recipients:  recipients,
		transport:   transport,
		location:    location,
	}
}

// WithDeliveryLog suppresses re-firing within the same day. Without it,
// repeated sweeps inside one due window deliver again; tracking sent state is
// the delivery layer's decision, not the evaluator's.
func (service *ReminderService) WithDeliveryLog(deliveryLog *DeliveryLog) *ReminderService {
	service.deliveryLog = deliveryLog
	return service
}

// EvaluateDueReminders runs the due check for every enabled, non-deleted
// reminder across all users, composing a message for each one that fires.
func (service *ReminderService) EvaluateDueReminders(now time.Time) ([]DueCheck, error) {
	rows, err := service.reminders.ListEnabled()
	if err != nil {
		return nil, err
	}

	today := DateAtLocation(now, service.location)
	latestByUser := make(map[uint]*cycle.Result, 4)

	checks := make([]DueCheck, 0, len(rows))
	for _, row := range rows {
		prediction, ok := latestByUser[row.UserID]
		if !ok {
			prediction, err = service.latestPrediction(row.UserID)
			if err != nil {
				return nil, err
			}
			latestByUser[row.UserID] = prediction
		}

		config := row.ToConfig()
		due := reminders.EvaluateWithDelivery(config, prediction, today, service.deliveredFunc())

		message := ""
		if due {
			message = reminders.ComposeMessage(config, prediction)
		}
		checks = append(checks, DueCheck{
			ReminderID: row.ID,
			UserID:     row.UserID,
			Due:        due,
			Message:    message,
		})
	}

	return checks, nil
}

// ProcessDueReminders evaluates and delivers in one pass. A failed delivery
// is logged and counted for that reminder only; the rest of the sweep keeps
// going.
func (service *ReminderService) ProcessDueReminders(ctx context.Context, now time.Time) (delivered int, failed int, err error) {
	checks, err := service.EvaluateDueReminders(now)
	if err != nil {
		return 0, 0, err
	}

	today := DateAtLocation(now, service.location)
	for _, check := range checks {
		if !check.Due {
			continue
		}

		address := ""
		if service.recipients != nil {
			user, userErr := service.recipients.FindByID(check.UserID)
			if userErr != nil {
				log.Printf("sweep: resolve recipient for reminder %s failed: %v", check.ReminderID, userErr)
				failed++
				continue
			}
			address = user.Email
		}

		if sendErr := service.transport.Send(ctx, address, reminderSubject, check.Message); sendErr != nil {
			log.Printf("sweep: deliver reminder %s failed: %v", check.ReminderID, sendErr)
			failed++
			continue
		}

		if service.deliveryLog != nil {
			service.deliveryLog.MarkDelivered(check.ReminderID, today)
		}
		delivered++
	}

	return delivered, failed, nil
}

func (service *ReminderService) latestPrediction(userID uint) (*cycle.Result, error) {
	row, found, err := service.predictions.LatestByUser(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	result := row.ToResult()
	return &result, nil
}

func (service *ReminderService) deliveredFunc() reminders.DeliveredFunc {
	if service.deliveryLog == nil {
		return nil
	}
	return service.deliveryLog.DeliveredOn
}
