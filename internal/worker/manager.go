package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout - сколько Stop ждет завершения воркеров
const DefaultShutdownTimeout = 30 * time.Second

// WorkerManager запускает зарегистрированные воркеры и останавливает их вместе
type WorkerManager struct {
	workers         []Worker
	logger          *zap.Logger
	shutdownTimeout time.Duration
	wg              sync.WaitGroup
	mu              sync.Mutex
}

func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers:         make([]Worker, 0),
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// SetShutdownTimeout меняет время ожидания в Stop
func (m *WorkerManager) SetShutdownTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shutdownTimeout = d
}

func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает каждый воркер в своей горутине и сразу возвращается
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()

			if err := w.Start(ctx); err != nil && ctx.Err() == nil {
				m.logger.Error("Worker failed",
					zap.String("name", w.Name()),
					zap.Error(err))
			}
		}(w)
	}

	return nil
}

// Stop останавливает все воркеры и ждет их не дольше shutdownTimeout
func (m *WorkerManager) Stop() error {
	workers := m.snapshot()
	m.mu.Lock()
	timeout := m.shutdownTimeout
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
	case <-time.After(timeout):
		m.logger.Warn("Workers shutdown timed out", zap.Duration("timeout", timeout))
		return fmt.Errorf("workers shutdown timed out after %v", timeout)
	}

	return nil
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()

	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	return workers
}
