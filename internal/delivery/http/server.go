package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/config"
	"github.com/railway-assistant/internal/delivery/http/handler"
	"github.com/railway-assistant/internal/delivery/http/middleware"
	"github.com/railway-assistant/internal/pkg/errors"
	"github.com/railway-assistant/internal/pkg/utils"
)

// Server - HTTP сервер action на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	actionHandler *handler.ActionHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	actionHandler *handler.ActionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Railway Assistant Actions",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: cfg.Server.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		actionHandler: actionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/health", s.actionHandler.Health)
	s.app.Get("/actions", s.actionHandler.ListActions)
	s.app.Post("/webhook", s.actionHandler.Webhook)
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
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

// customErrorHandler - ошибки fiber (404 маршрута, 405 и т.п.) в формате API
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		if code == fiber.StatusInternalServerError {
			return utils.SendError(c, err)
		}
		return utils.SendError(c, errors.New("HTTP_ERROR", err.Error(), code))
	}
}
