package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/railway-assistant/internal/config"
	"github.com/railway-assistant/internal/pkg/logger"
	"github.com/railway-assistant/internal/pkg/utils"
	"github.com/railway-assistant/internal/repository/reference"
	redisRepo "github.com/railway-assistant/internal/repository/redis"
	"github.com/railway-assistant/internal/usecase"
	"github.com/railway-assistant/internal/worker"
	"github.com/railway-assistant/internal/worker/action"
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

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "railway-assistant-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting action stream worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_batch_size", cfg.Worker.MaxBatchSize),
		zap.Duration("read_timeout", cfg.Worker.StreamReadTimeout))

	// 3. Load reference data
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := reference.LoadStore(loadCtx, cfg, log)
	cancelLoad()
	if err != nil {
		log.Fatal("Failed to load reference data", zap.Error(err))
	}

	// 4. Connect to Redis
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := redisRepo.Connect(connectCtx, &cfg.Redis, log)
	cancelConnect()
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize actions and workers
	clock := utils.ZoneClock(cfg.Server.Timezone)
	registry := usecase.NewActionRegistry(log, usecase.NewDefaultActions(store, clock, log)...)
	streamRepo := redisClient.Streams(cfg.Worker.StreamReadTimeout)

	actionWorker := action.NewActionWorker(
		streamRepo,
		registry,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxBatchSize,
		log,
	)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(actionWorker)

	// 6. Start workers and wait for shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
