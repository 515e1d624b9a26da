package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/selene/internal/db"
	"github.com/terraincognita07/selene/internal/models"
	"github.com/terraincognita07/selene/internal/reminders"
)

type reminderInput struct {
	Type     string              `json:"type"`
	Schedule *reminders.Schedule `json:"schedule"`
	Enabled  *bool               `json:"enabled"`
}

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rows, err := handler.repos.Reminders.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminders")
	}

	payload := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		payload = append(payload, reminderJSON(row))
	}
	return c.JSON(fiber.Map{"reminders": payload})
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := reminderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !models.IsValidReminderType(input.Type) {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder type")
	}
	schedule := reminders.Schedule{}
	if input.Schedule != nil {
		schedule = *input.Schedule
	}
	if schedule.DaysBefore != nil && *schedule.DaysBefore < 0 {
		return apiError(c, fiber.StatusBadRequest, "days_before must not be negative")
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	reminder := models.Reminder{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Type:     input.Type,
		Schedule: schedule,
		Enabled:  enabled,
	}
	if err := handler.repos.Reminders.Create(&reminder); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create reminder")
	}
	return c.Status(fiber.StatusCreated).JSON(reminderJSON(reminder))
}

func (handler *Handler) UpdateReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reminder, err := handler.repos.Reminders.FindByUserAndID(user.ID, c.Params("id"))
	if errors.Is(err, db.ErrReminderNotFound) {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminder")
	}

	input := reminderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if input.Type != "" {
		if !models.IsValidReminderType(input.Type) {
			return apiError(c, fiber.StatusBadRequest, "invalid reminder type")
		}
		reminder.Type = input.Type
	}
	if input.Schedule != nil {
		if input.Schedule.DaysBefore != nil && *input.Schedule.DaysBefore < 0 {
			return apiError(c, fiber.StatusBadRequest, "days_before must not be negative")
		}
		reminder.Schedule = *input.Schedule
	}
	if input.Enabled != nil {
		reminder.Enabled = *input.Enabled
	}

	if err := handler.repos.Reminders.Save(&reminder); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save reminder")
	}
	return c.JSON(reminderJSON(reminder))
}

func (handler *Handler) DeleteReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	err := handler.repos.Reminders.SoftDelete(user.ID, c.Params("id"))
	if errors.Is(err, db.ErrReminderNotFound) {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete reminder")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// GetDueReminders runs the batched due check and returns the current user's
// slice of it.
func (handler *Handler) GetDueReminders(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	checks, err := handler.reminders.EvaluateDueReminders(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to evaluate reminders")
	}

	payload := make([]fiber.Map, 0, len(checks))
	for _, check := range checks {
		if check.UserID != user.ID {
			continue
		}
		payload = append(payload, fiber.Map{
			"reminder_id": check.ReminderID,
			"due":         check.Due,
			"message":     check.Message,
		})
	}
	return c.JSON(fiber.Map{"due_checks": payload})
}

func reminderJSON(reminder models.Reminder) fiber.Map {
	return fiber.Map{
		"id":       reminder.ID,
		"type":     reminder.Type,
		"schedule": reminder.Schedule,
		"enabled":  reminder.Enabled,
	}
}
