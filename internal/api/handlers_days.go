package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/models"
	"github.com/terraincognita07/selene/internal/services"
)

type dayInput struct {
	Flow  string `json:"flow"`
	Notes string `json:"notes"`
}

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.repos.DailyLogs.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load days")
	}

	payload := make([]fiber.Map, 0, len(logs))
	for _, entry := range logs {
		payload = append(payload, dayJSON(entry))
	}
	return c.JSON(fiber.Map{"days": payload})
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	entry, found, err := handler.repos.DailyLogs.FindByUserAndDayRange(user.ID, dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "day not logged")
	}
	return c.JSON(dayJSON(entry))
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := dayInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !models.IsValidFlow(input.Flow) {
		return apiError(c, fiber.StatusBadRequest, "invalid flow value")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	entry, found, err := handler.repos.DailyLogs.FindByUserAndDayRange(user.ID, dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	}

	if !found {
		entry = models.DailyLog{UserID: user.ID, Date: dayStart}
	}
	entry.Flow = input.Flow
	entry.Notes = input.Notes

	if !found {
		err = handler.repos.DailyLogs.Create(&entry)
	} else {
		err = handler.repos.DailyLogs.Save(&entry)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	}

	return c.JSON(dayJSON(entry))
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	if err := handler.repos.DailyLogs.DeleteByUserAndDayRange(user.ID, dayStart, dayEnd); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func dayJSON(entry models.DailyLog) fiber.Map {
	return fiber.Map{
		"date":  formatDay(entry.Date),
		"flow":  entry.Flow,
		"notes": entry.Notes,
	}
}
