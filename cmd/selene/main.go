package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/terraincognita07/selene/internal/api"
	"github.com/terraincognita07/selene/internal/db"
	"github.com/terraincognita07/selene/internal/security"
	"github.com/terraincognita07/selene/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		generated, err := security.EphemeralSecret()
		if err != nil {
			log.Fatalf("generate secret failed: %v", err)
		}
		secretKey = generated
		log.Print("SECRET_KEY not set, using an ephemeral secret; sessions will not survive a restart")
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "selene.db"))
	port := getEnv("PORT", "8080")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)
	transport := buildTransport()

	predictionService := services.NewPredictionService(repos.DailyLogs, repos.Profiles, repos.Predictions, location)
	reminderService := services.NewReminderService(repos.Reminders, repos.Predictions, repos.Users, transport, location).
		WithDeliveryLog(services.NewDeliveryLog())
	sweep := services.NewSweepService(repos.Users, predictionService, reminderService)

	handler := api.NewHandler(repos, predictionService, reminderService, secretKey, location)

	app := fiber.New(fiber.Config{
		AppName:               "Selene",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()

	scheduler := cron.New(cron.WithLocation(location))
	sweepSchedule := getEnv("SWEEP_SCHEDULE", "@every 6h")
	if _, err := scheduler.AddFunc(sweepSchedule, func() {
		sweep.Run(sweepCtx, time.Now())
	}); err != nil {
		log.Fatalf("invalid SWEEP_SCHEDULE %q: %v", sweepSchedule, err)
	}
	scheduler.Start()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelSweep()
		<-scheduler.Stop().Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Selene listening on http://0.0.0.0:%s (db: %s, tz: %s, sweep: %s)", port, dbPath, location.String(), sweepSchedule)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildTransport() services.Transport {
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if botToken == "" || chatID == "" {
		log.Print("telegram transport not configured, reminders will be logged instead")
		return services.LogTransport{}
	}
	return services.NewTelegramTransport(botToken, chatID)
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
