package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"conversational-task-management/config"
	_ "conversational-task-management/docs" // Swagger docs
	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/dialogue/classifier"
	dialogueHTTP "conversational-task-management/internal/dialogue/delivery/http"
	tgDelivery "conversational-task-management/internal/dialogue/delivery/telegram"
	"conversational-task-management/internal/dialogue/extractor"
	dialogueUC "conversational-task-management/internal/dialogue/usecase"
	"conversational-task-management/internal/httpserver"
	"conversational-task-management/internal/middleware"
	taskHTTP "conversational-task-management/internal/task/delivery/http"
	"conversational-task-management/internal/task/repository/memory"
	taskUC "conversational-task-management/internal/task/usecase"
	"conversational-task-management/pkg/datemath"
	"conversational-task-management/pkg/gcalendar"
	"conversational-task-management/pkg/gemini"
	"conversational-task-management/pkg/log"
	"conversational-task-management/pkg/telegram"
)

// @title       Conversational Task Management API
// @description Natural-language task management over a stateless dialogue engine.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parsing
	dateMathParser, dtErr := datemath.NewParser(cfg.Dialogue.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Dialogue.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Google Calendar (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Task domain
	taskRepo := memory.New(logger)
	taskService := taskUC.New(logger, taskRepo, calendarClient, cfg.GoogleCalendar.CalendarID)

	// 6. Dialogue engine. Rule-based by default; with a Gemini key the
	// classifier goes through the LLM and falls back to rules.
	var intentClassifier dialogue.IntentClassifier = classifier.NewRuleBased()
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			geminiClient.SetModel(cfg.Gemini.Model)
		}
		intentClassifier = classifier.NewLLMBacked(geminiClient, logger)
		logger.Info(ctx, "LLM-backed intent classifier enabled")
	}

	engineOpts := []dialogueUC.Option{}
	if cfg.Dialogue.PendingTTL > 0 {
		engineOpts = append(engineOpts, dialogueUC.WithPendingTTL(cfg.Dialogue.PendingTTL))
	}
	engine := dialogueUC.New(logger, intentClassifier, extractor.New(dateMathParser), taskService, engineOpts...)

	// 7. Deliveries
	dialogueHandler := dialogueHTTP.New(logger, engine)
	taskHandler := taskHTTP.New(logger, taskService)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, engine, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, Telegram delivery disabled")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DialogueHandler: dialogueHandler,
		TaskHandler:     taskHandler,
		TelegramHandler: telegramHandler,
		RateLimiter:     middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMin),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
