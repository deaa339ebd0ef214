package main

// @title Railway Assistant Actions API
// @version 1.0.0
// @description Сервер actions железнодорожного ассистента: расписание, опоздания, цены билетов, перроны, типы поездов и услуги.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5055
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/railway-assistant/docs"
	"github.com/railway-assistant/internal/config"
	httpDelivery "github.com/railway-assistant/internal/delivery/http"
	"github.com/railway-assistant/internal/delivery/http/handler"
	"github.com/railway-assistant/internal/pkg/logger"
	"github.com/railway-assistant/internal/pkg/utils"
	"github.com/railway-assistant/internal/repository/reference"
	"github.com/railway-assistant/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "railway-assistant-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Railway Assistant action server")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("reference_source", cfg.Reference.Source),
		zap.String("timezone", cfg.Server.Timezone),
	)

	// 3. Load reference data
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := reference.LoadStore(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to load reference data", zap.Error(err))
	}

	// 4. Initialize actions
	clock := utils.ZoneClock(cfg.Server.Timezone)
	registry := usecase.NewActionRegistry(log, usecase.NewDefaultActions(store, clock, log)...)
	log.Info("Actions registered", zap.Strings("actions", registry.Names()))

	// 5. Initialize HTTP server
	actionHandler := handler.NewActionHandler(registry, log)
	server := httpDelivery.NewServer(cfg, log, actionHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
