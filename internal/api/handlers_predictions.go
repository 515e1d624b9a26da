package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/db"
	"github.com/terraincognita07/selene/internal/models"
)

func (handler *Handler) ComputePrediction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	prediction, err := handler.predictions.ComputePrediction(user.ID, time.Now())
	if errors.Is(err, db.ErrProfileNotFound) {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute prediction")
	}
	return c.JSON(predictionJSON(prediction))
}

func (handler *Handler) GetLatestPrediction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	prediction, found, err := handler.repos.Predictions.LatestByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load prediction")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no prediction yet")
	}
	return c.JSON(predictionJSON(prediction))
}

func (handler *Handler) ListPredictions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	predictions, err := handler.repos.Predictions.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load predictions")
	}

	payload := make([]fiber.Map, 0, len(predictions))
	for _, prediction := range predictions {
		payload = append(payload, predictionJSON(prediction))
	}
	return c.JSON(fiber.Map{"predictions": payload})
}

func predictionJSON(prediction models.Prediction) fiber.Map {
	metadata := fiber.Map{
		"cycles_analyzed":        prediction.Metadata.CyclesAnalyzed,
		"fertility_window_start": formatDay(prediction.Metadata.FertilityWindowStart),
		"fertility_window_end":   formatDay(prediction.Metadata.FertilityWindowEnd),
	}
	if prediction.Metadata.AverageCycleLength != nil {
		metadata["average_cycle_length"] = *prediction.Metadata.AverageCycleLength
	}
	if prediction.Metadata.StdDeviation != nil {
		metadata["std_deviation"] = *prediction.Metadata.StdDeviation
	}

	return fiber.Map{
		"computed_on":       formatDay(prediction.ComputedOn),
		"next_period_start": formatDay(prediction.NextPeriodStart),
		"next_period_end":   formatDay(prediction.NextPeriodEnd),
		"confidence":        prediction.Confidence,
		"source":            prediction.Source,
		"metadata":          metadata,
	}
}
