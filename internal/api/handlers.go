package api

import (
	"time"

	"github.com/terraincognita07/selene/internal/db"
	"github.com/terraincognita07/selene/internal/services"
)

const (
	authCookieName = "selene_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	repos        *db.Repositories
	predictions  *services.PredictionService
	reminders    *services.ReminderService
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

func NewHandler(repos *db.Repositories, predictions *services.PredictionService, reminders *services.ReminderService, secretKey string, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		repos:       repos,
		predictions: predictions,
		reminders:   reminders,
		secretKey:   []byte(secretKey),
		location:    location,
	}
}
