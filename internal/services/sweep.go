package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/terraincognita07/selene/internal/db"
)

type SweepUserLister interface {
	ListIDs() ([]uint, error)
}

// SweepService is the batch call site: it refreshes every user's forecast and
// then delivers whatever reminders came due. It runs the exact same engine as
// the on-demand compute endpoint.
type SweepService struct {
	users       SweepUserLister
	predictions *PredictionService
	reminders   *ReminderService
}

func NewSweepService(users SweepUserLister, predictions *PredictionService, reminderService *ReminderService) *SweepService {
	return &SweepService{
		users:       users,
		predictions: predictions,
		reminders:   reminderService,
	}
}

func (service *SweepService) Run(ctx context.Context, now time.Time) {
	userIDs, err := service.users.ListIDs()
	if err != nil {
		log.Printf("sweep: list users failed: %v", err)
		return
	}

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return
		}
		if _, err := service.predictions.ComputePrediction(userID, now); err != nil {
			// Users without a profile yet simply have nothing to forecast.
			if !errors.Is(err, db.ErrProfileNotFound) {
				log.Printf("sweep: compute prediction for user %d failed: %v", userID, err)
			}
			continue
		}
	}

	delivered, failed, err := service.reminders.ProcessDueReminders(ctx, now)
	if err != nil {
		log.Printf("sweep: evaluate reminders failed: %v", err)
		return
	}
	if delivered > 0 || failed > 0 {
		log.Printf("sweep: delivered %d reminder(s), %d failed", delivered, failed)
	}
}
