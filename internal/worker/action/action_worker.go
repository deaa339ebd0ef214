package action

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/railway-assistant/internal/domain"
	"github.com/railway-assistant/internal/domain/repository"
	"github.com/railway-assistant/internal/pkg/validator"
	"github.com/railway-assistant/internal/usecase/dto"
	"github.com/railway-assistant/internal/worker"
)

const (
	defaultBatchSize = 20
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second
)

// Executor выполняет action по запросу
type Executor interface {
	Execute(ctx context.Context, req dto.ActionRequest) (*dto.ActionResponse, error)
}

// ActionWorker выполняет actions, пришедшие через stream:action:request,
// и публикует результат в stream:action:done
type ActionWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	executor     Executor
	consumerName string
	batchSize    int
}

// NewActionWorker создает новый ActionWorker
func NewActionWorker(
	streamRepo repository.StreamRepository,
	executor Executor,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *ActionWorker {
	hostname, _ := os.Hostname()
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &ActionWorker{
		BaseWorker:   worker.NewBaseWorker("action-executor", consumerGroup, logger),
		streamRepo:   streamRepo,
		executor:     executor,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		batchSize:    batchSize,
	}
}

// Start запускает цикл чтения стрима до Stop или отмены контекста
func (w *ActionWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ActionWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamActionRequest, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.pause(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.pause(ctx, emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch читает и обрабатывает одну пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *ActionWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamActionRequest,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		w.handleMessage(ctx, msg)
	}

	return len(messages), nil
}

func (w *ActionWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	event, err := parseMessage(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// ACK битое сообщение чтобы не застревало
		w.ack(ctx, msg.ID)
		return
	}

	done := w.execute(ctx, event)
	if err := w.streamRepo.PublishToStream(ctx, domain.StreamActionDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
	}

	w.ack(ctx, msg.ID)
}

func (w *ActionWorker) execute(ctx context.Context, event *domain.ActionRequestEvent) *domain.ActionDoneEvent {
	done := &domain.ActionDoneEvent{
		RequestID:  event.RequestID,
		NextAction: event.NextAction,
		SenderID:   event.Tracker.SenderID,
		Events:     []domain.Event{},
		Responses:  []domain.BotResponse{},
	}

	req := dto.ActionRequest{
		NextAction: event.NextAction,
		SenderID:   event.Tracker.SenderID,
		Tracker:    event.Tracker,
	}
	if err := validator.ValidateRequest(&req); err != nil {
		done.Error = err.Error()
		return done
	}

	resp, err := w.executor.Execute(ctx, req)
	if err != nil {
		w.Logger().Warn("Action execution failed",
			zap.String("request_id", event.RequestID.String()),
			zap.String("action", event.NextAction),
			zap.Error(err))
		done.Error = err.Error()
		return done
	}

	done.Events = resp.Events
	done.Responses = resp.Responses
	return done
}

func (w *ActionWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamActionRequest, w.ConsumerGroup(), id); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}

func (w *ActionWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	case <-w.StopChan():
	}
}

// parseMessage разбирает JSON-пакет события; request_id генерируется,
// если издатель его не указал
func parseMessage(msg domain.StreamMessage) (*domain.ActionRequestEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.ActionRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.NextAction == "" {
		return nil, fmt.Errorf("missing next_action")
	}
	if event.RequestID == uuid.Nil {
		event.RequestID = uuid.New()
	}

	return &event, nil
}
