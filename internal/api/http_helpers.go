package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/models"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) parseDayParam(c *fiber.Ctx, name string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", c.Params(name), handler.location)
}

func formatDay(value time.Time) string {
	return value.Format("2006-01-02")
}
