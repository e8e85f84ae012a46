package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	infraTelegram "homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	// Missing or malformed configuration is the only unconditionally fatal
	// condition in the system; everything after this point retries forever.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, PollInterval: %s", cfg.LogLevel, cfg.Environment, cfg.PollInterval)

	// Initialize Telegram Bot. NewBot verifies the token against the API, so
	// a bad TELEGRAM_TOKEN surfaces here and not on the first notification.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		appLogger.Fatalf("Could not create Telegram bot: %v", err)
	}
	appLogger.Info("Telegram bot initialized.")

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout)
	notifier := infraTelegram.NewTelebotNotifier(bot, cfg.TelegramChatID, appLogger.WithField("component", "notifier"))
	poller := app.NewPoller(
		apiClient,
		notifier,
		appLogger.WithField("component", "poller"),
		cfg.PollInterval,
		time.Now().Unix(), // only changes after process start are relayed
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poller.Run(ctx)

	appLogger.Info("Application shut down gracefully.")
}
