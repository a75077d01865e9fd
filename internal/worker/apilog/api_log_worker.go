package apilog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/metrics"
	"github.com/geography-microservice/internal/worker"
)

const (
	workerName = "api-log"

	// outcomeMalformed - сообщение не разобрано и пропущено
	outcomeMalformed = "malformed"

	defaultRetryDelay = 500 * time.Millisecond
)

// Worker читает журнал запросов из стрима и сохраняет записи в БД
type Worker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	logRepo    repository.APILogRepository
	maxRetries int
	retryDelay time.Duration
}

// NewWorker создает воркер журнала запросов
func NewWorker(
	streamRepo repository.StreamRepository,
	logRepo repository.APILogRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *Worker {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Worker{
		BaseWorker: worker.NewBaseWorker(workerName, consumerGroup, logger),
		streamRepo: streamRepo,
		logRepo:    logRepo,
		maxRetries: maxRetries,
		retryDelay: defaultRetryDelay,
	}
}

// WithRetryDelay задаёт паузу между попытками записи
func (w *Worker) WithRetryDelay(d time.Duration) *Worker {
	w.retryDelay = d
	return w
}

// Start создаёт группу потребителей и обрабатывает сообщения до остановки
func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAPILogs, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(consumeCtx, domain.StreamAPILogs, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	logger.Info("API log worker started",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("max_retries", w.maxRetries))

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			w.handle(ctx, msg)
		}
	}
}

// handle сохраняет одно сообщение. Битое подтверждается сразу, остальные после записи
// или исчерпания попыток; при остановке посреди попыток сообщение остаётся в pending.
func (w *Worker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	var entry domain.APILog
	if err := json.Unmarshal([]byte(msg.Data), &entry); err != nil {
		logger.Warn("Failed to parse API log message, skipping", zap.Error(err))
		metrics.APILogsWrittenTotal.WithLabelValues(outcomeMalformed).Inc()
		w.ack(ctx, msg.ID)
		return
	}

	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.logRepo.Create(ctx, &entry); err == nil {
			break
		}

		logger.Warn("Failed to save API log",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.maxRetries),
			zap.Error(err))

		if attempt < w.maxRetries && !w.Wait(ctx, w.retryDelay*time.Duration(attempt)) {
			return
		}
	}

	if err != nil {
		logger.Error("API log dropped after retries", zap.String("request_id", entry.RequestID), zap.Error(err))
		metrics.APILogsWrittenTotal.WithLabelValues(metrics.OutcomeError).Inc()
	} else {
		metrics.APILogsWrittenTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}

	w.ack(ctx, msg.ID)
}

func (w *Worker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamAPILogs, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack API log message", zap.String("message_id", messageID), zap.Error(err))
	}
}
