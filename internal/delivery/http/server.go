package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/location-moderation/internal/config"
	"github.com/location-moderation/internal/delivery/http/handler"
	"github.com/location-moderation/internal/delivery/http/middleware"
	appErrors "github.com/location-moderation/internal/pkg/errors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	intakeHandler     *handler.IntakeHandler
	webhookHandler    *handler.WebhookHandler
	moderationHandler *handler.ModerationHandler
	statusHandler     *handler.StatusHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	intakeHandler *handler.IntakeHandler,
	webhookHandler *handler.WebhookHandler,
	moderationHandler *handler.ModerationHandler,
	statusHandler *handler.StatusHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Location Moderation Relay",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		intakeHandler:     intakeHandler,
		webhookHandler:    webhookHandler,
		moderationHandler: moderationHandler,
		statusHandler:     statusHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Статусная страница сервиса
	s.app.Get("/", s.statusHandler.RenderStatus)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.statusHandler.Health)

	// Intake: заявки от клиентского приложения
	api.Post("/submissions", s.intakeHandler.Submit)

	// Telegram webhook
	api.Post("/webhook", s.webhookHandler.HandleUpdate)

	// Модерация по прямой ссылке (без Telegram)
	api.Get("/moderation/approve/:id", s.moderationHandler.Approve)
	api.Get("/moderation/reject/:id", s.moderationHandler.Reject)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App - доступ к приложению Fiber (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if e, ok := err.(*appErrors.AppError); ok {
			code = e.StatusCode
			errCode = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
