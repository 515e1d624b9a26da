package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/db"
	"github.com/terraincognita07/selene/internal/models"
)

type profileInput struct {
	CycleLength  int `json:"cycle_length"`
	PeriodLength int `json:"period_length"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.repos.Profiles.FindByUserID(user.ID)
	if errors.Is(err, db.ErrProfileNotFound) {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(profileJSON(profile))
}

func (handler *Handler) UpsertProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !models.IsValidCycleLength(input.CycleLength) {
		return apiError(c, fiber.StatusBadRequest, "cycle length out of range")
	}
	if !models.IsValidPeriodLength(input.PeriodLength) {
		return apiError(c, fiber.StatusBadRequest, "period length out of range")
	}

	err := handler.repos.Profiles.UpdateLengths(user.ID, input.CycleLength, input.PeriodLength)
	if errors.Is(err, db.ErrProfileNotFound) {
		profile := models.Profile{
			UserID:       user.ID,
			CycleLength:  input.CycleLength,
			PeriodLength: input.PeriodLength,
		}
		if createErr := handler.repos.Profiles.Create(&profile); createErr != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
		}
		return c.Status(fiber.StatusCreated).JSON(profileJSON(profile))
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	profile, err := handler.repos.Profiles.FindByUserID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(profileJSON(profile))
}

func profileJSON(profile models.Profile) fiber.Map {
	return fiber.Map{
		"cycle_length":  profile.CycleLength,
		"period_length": profile.PeriodLength,
	}
}
