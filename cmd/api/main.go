package main

// @title Location Moderation Relay API
// @version 1.0.0
// @description Сервис модерации пользовательских локаций для центральноамериканского каталога. Принимает заявки на новые локации, пересылает их модератору в Telegram с inline-кнопками одобрения/отклонения и при одобрении вносит запись в JSON-документ, размещённый в GitHub-репозитории.
// @description
// @description Основные возможности:
// @description - Приём заявок от клиентского приложения с валидацией страны и координат
// @description - Уведомление модератора в Telegram с кнопками Aprobar/Rechazar
// @description - Команды бота: /lista, /paises, /aprobar, /rechazar
// @description - Слияние одобренных записей в удалённый JSON-документ с optimistic concurrency (SHA compare-and-swap)
// @description - Модерация по прямой ссылке без Telegram

// @contact.name API Support
// @contact.email support@location-moderation.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:10000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/location-moderation/docs"
	"github.com/location-moderation/internal/config"
	httpDelivery "github.com/location-moderation/internal/delivery/http"
	"github.com/location-moderation/internal/delivery/http/handler"
	"github.com/location-moderation/internal/infrastructure/github"
	"github.com/location-moderation/internal/infrastructure/telegram"
	"github.com/location-moderation/internal/pkg/logger"
	"github.com/location-moderation/internal/repository/memory"
	"github.com/location-moderation/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Location Moderation Relay")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("telegram_configured", cfg.TelegramConfigured()),
		zap.Bool("github_configured", cfg.GitHubConfigured()),
	)

	if !cfg.TelegramConfigured() {
		log.Warn("TELEGRAM_BOT_TOKEN is not set, moderator notifications will fail")
	}
	if !cfg.GitHubConfigured() {
		log.Warn("GITHUB_TOKEN/GITHUB_REPO are not set, approvals will fail")
	}

	// 3. Initialize Repositories
	pendingRepo := memory.NewPendingRepository()
	documentRepo := github.NewGitHubClient(&cfg.GitHub, log)
	messenger := telegram.NewTelegramClient(&cfg.Telegram, log)

	log.Info("Repositories initialized")

	// 4. Initialize Use Cases
	mergeUC := usecase.NewMergeUseCase(documentRepo, log)
	intakeUC := usecase.NewIntakeUseCase(pendingRepo, messenger, log)
	moderationUC := usecase.NewModerationUseCase(pendingRepo, mergeUC, messenger, log)
	webhookUC := usecase.NewWebhookUseCase(moderationUC, messenger, log)

	log.Info("Use cases initialized")

	// 5. Initialize HTTP Handlers
	intakeHandler := handler.NewIntakeHandler(intakeUC, log)
	webhookHandler := handler.NewWebhookHandler(webhookUC, log)
	moderationHandler := handler.NewModerationHandler(moderationUC, log)
	statusHandler, err := handler.NewStatusHandler(cfg, pendingRepo, log)
	if err != nil {
		log.Fatal("Failed to initialize status handler", zap.Error(err))
	}

	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		intakeHandler,
		webhookHandler,
		moderationHandler,
		statusHandler,
	)

	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
