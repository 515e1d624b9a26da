package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	account := api.Group("/account", handler.AuthRequired)
	account.Delete("", handler.DeleteAccount)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpsertProfile)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("", handler.GetDays)
	days.Get("/:date", handler.GetDay)
	days.Post("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	predictions := api.Group("/predictions", handler.AuthRequired)
	predictions.Get("", handler.ListPredictions)
	predictions.Get("/latest", handler.GetLatestPrediction)
	predictions.Post("/compute", handler.ComputePrediction)

	reminders := api.Group("/reminders", handler.AuthRequired)
	reminders.Get("", handler.ListReminders)
	reminders.Get("/due", handler.GetDueReminders)
	reminders.Post("", handler.CreateReminder)
	reminders.Put("/:id", handler.UpdateReminder)
	reminders.Delete("/:id", handler.DeleteReminder)
}
