package models

import (
	"time"

	"github.com/terraincognita07/selene/internal/cycle"
)

type PredictionMetadata struct {
	CyclesAnalyzed       int       `json:"cycles_analyzed"`
	AverageCycleLength   *float64  `json:"average_cycle_length,omitempty"`
	StdDeviation         *float64  `json:"std_deviation,omitempty"`
	FertilityWindowStart time.Time `json:"fertility_window_start"`
	FertilityWindowEnd   time.Time `json:"fertility_window_end"`
}

// Prediction is one append-only forecast row. Rows are never mutated; readers
// take the latest per user by computed_on.
type Prediction struct {
	ID              uint               `gorm:"primaryKey"`
	UserID          uint               `gorm:"not null;uniqueIndex:uidx_predictions_user_day"`
	ComputedOn      time.Time          `gorm:"type:date;not null;uniqueIndex:uidx_predictions_user_day"`
	NextPeriodStart time.Time          `gorm:"type:date;not null"`
	NextPeriodEnd   time.Time          `gorm:"type:date;not null"`
	Confidence      float64            `gorm:"not null"`
	Source          string             `gorm:"not null"`
	Metadata        PredictionMetadata `gorm:"serializer:json"`
	CreatedAt       time.Time
}

// NewPrediction maps an engine result onto a storable row. The statistics
// fields stay unset when no cycle length samples were available.
func NewPrediction(userID uint, computedOn time.Time, result cycle.Result) Prediction {
	metadata := PredictionMetadata{
		CyclesAnalyzed:       result.CyclesAnalyzed,
		FertilityWindowStart: result.FertilityWindowStart,
		FertilityWindowEnd:   result.FertilityWindowEnd,
	}
	if result.CyclesAnalyzed > 0 {
		average := result.AverageCycleLength
		deviation := result.StdDeviation
		metadata.AverageCycleLength = &average
		metadata.StdDeviation = &deviation
	}

	return Prediction{
		UserID:          userID,
		ComputedOn:      computedOn,
		NextPeriodStart: result.NextPeriodStart,
		NextPeriodEnd:   result.NextPeriodEnd,
		Confidence:      result.Confidence,
		Source:          string(result.Source),
		Metadata:        metadata,
	}
}

// ToResult reconstructs the engine view of a stored prediction row.
func (prediction Prediction) ToResult() cycle.Result {
	result := cycle.Result{
		NextPeriodStart:      prediction.NextPeriodStart,
		NextPeriodEnd:        prediction.NextPeriodEnd,
		FertilityWindowStart: prediction.Metadata.FertilityWindowStart,
		FertilityWindowEnd:   prediction.Metadata.FertilityWindowEnd,
		Confidence:           prediction.Confidence,
		Source:               cycle.Source(prediction.Source),
		CyclesAnalyzed:       prediction.Metadata.CyclesAnalyzed,
	}
	if prediction.Metadata.AverageCycleLength != nil {
		result.AverageCycleLength = *prediction.Metadata.AverageCycleLength
	}
	if prediction.Metadata.StdDeviation != nil {
		result.StdDeviation = *prediction.Metadata.StdDeviation
	}
	return result
}
