package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type deleteAccountInput struct {
	Password string `json:"password"`
}

// DeleteAccount permanently removes the user and everything keyed to them:
// daily logs, predictions, reminders (including soft-deleted rows) and the
// profile. The current password must be confirmed in the request body.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	input.Password = strings.TrimSpace(input.Password)
	if input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "password required")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid password")
	}

	if err := handler.repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
