package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/selene/internal/cycle"
	"github.com/terraincognita07/selene/internal/db"
	"github.com/terraincognita07/selene/internal/models"
)

type PredictionLogReader interface {
	ListRecentByUser(userID uint, until time.Time, windowDays int) ([]models.DailyLog, error)
}

type PredictionProfileReader interface {
	FindByUserID(userID uint) (models.Profile, error)
}

type PredictionWriter interface {
	Append(prediction *models.Prediction) error
}

type PredictionService struct {
	logs          PredictionLogReader
	profiles      PredictionProfileReader
	predictions   PredictionWriter
	location      *time.Location
	logWindowDays int
}

func NewPredictionService(logs PredictionLogReader, profiles PredictionProfileReader, predictions PredictionWriter, location *time.Location) *PredictionService {
	if location == nil {
		location = time.UTC
	}
	return &PredictionService{
		logs:          logs,
		profiles:      profiles,
		predictions:   predictions,
		location:      location,
		logWindowDays: db.DefaultLogWindowDays,
	}
}

// ComputePrediction runs the engine over the user's recent history and
// appends the forecast. A missing profile is an error here; profile values
// only ever act as defaults inside the engine when history is thin, never as
// a stand-in for the profile itself.
func (service *PredictionService) ComputePrediction(userID uint, now time.Time) (models.Prediction, error) {
	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.Prediction{}, fmt.Errorf("load profile: %w", err)
	}

	today := DateAtLocation(now, service.location)
	logs, err := service.logs.ListRecentByUser(userID, today, service.logWindowDays)
	if err != nil {
		return models.Prediction{}, fmt.Errorf("load daily logs: %w", err)
	}

	entries := make([]cycle.LogEntry, 0, len(logs))
	for _, logEntry := range logs {
		entries = append(entries, logEntry.ToLogEntry())
	}

	result := cycle.Predict(entries, cycle.Profile{
		CycleLengthDays:  profile.CycleLength,
		PeriodLengthDays: profile.PeriodLength,
	}, today)

	prediction := models.NewPrediction(userID, today, result)
	if err := service.predictions.Append(&prediction); err != nil {
		return models.Prediction{}, fmt.Errorf("store prediction: %w", err)
	}

	return prediction, nil
}
