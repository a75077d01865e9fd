package apilog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/pkg/errors"
)

// MockStreamRepository is a mock implementation of repository.StreamRepository
type MockStreamRepository struct {
	mock.Mock
	messages chan domain.StreamMessage
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	return m.messages, args.Error(0)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockAPILogRepository is a mock implementation of repository.APILogRepository
type MockAPILogRepository struct {
	mock.Mock
}

func (m *MockAPILogRepository) Create(ctx context.Context, log *domain.APILog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

const testGroup = "geography-api-log-workers"

func newTestWorker(maxRetries int) (*Worker, *MockStreamRepository, *MockAPILogRepository) {
	streamRepo := &MockStreamRepository{messages: make(chan domain.StreamMessage, 4)}
	logRepo := &MockAPILogRepository{}
	w := NewWorker(streamRepo, logRepo, testGroup, maxRetries, zap.NewNop()).WithRetryDelay(time.Millisecond)
	return w, streamRepo, logRepo
}

func apiLogMessage(t *testing.T, id string) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(domain.APILog{
		RequestID:  "req-1",
		Method:     "POST",
		Path:       "/geography_objects_coordinates/upgrade",
		Username:   "editor",
		StatusCode: 200,
		Success:    true,
		DurationMS: 12,
		DateStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:    time.Date(2024, 1, 1, 0, 0, 0, 12_000_000, time.UTC),
	})
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestWorker_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and acks", func(t *testing.T) {
		w, streamRepo, logRepo := newTestWorker(3)
		logRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.APILog) bool {
			return l.RequestID == "req-1" && l.StatusCode == 200 && l.Username == "editor"
		})).Return(nil).Once()
		streamRepo.On("AckMessage", ctx, domain.StreamAPILogs, testGroup, "1-0").Return(nil).Once()

		w.handle(ctx, apiLogMessage(t, "1-0"))

		logRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("malformed message is acked and skipped", func(t *testing.T) {
		w, streamRepo, logRepo := newTestWorker(3)
		streamRepo.On("AckMessage", ctx, domain.StreamAPILogs, testGroup, "2-0").Return(nil).Once()

		w.handle(ctx, domain.StreamMessage{ID: "2-0", Data: "{not json"})

		logRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		streamRepo.AssertExpectations(t)
	})

	t.Run("retries then succeeds", func(t *testing.T) {
		w, streamRepo, logRepo := newTestWorker(3)
		logRepo.On("Create", ctx, mock.Anything).Return(errors.ErrDatabaseError).Twice()
		logRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		streamRepo.On("AckMessage", ctx, domain.StreamAPILogs, testGroup, "3-0").Return(nil).Once()

		w.handle(ctx, apiLogMessage(t, "3-0"))

		logRepo.AssertNumberOfCalls(t, "Create", 3)
		streamRepo.AssertExpectations(t)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		w, streamRepo, logRepo := newTestWorker(2)
		logRepo.On("Create", ctx, mock.Anything).Return(errors.ErrDatabaseError)
		streamRepo.On("AckMessage", ctx, domain.StreamAPILogs, testGroup, "4-0").Return(nil).Once()

		w.handle(ctx, apiLogMessage(t, "4-0"))

		logRepo.AssertNumberOfCalls(t, "Create", 2)
		streamRepo.AssertExpectations(t)
	})

	t.Run("stop during retry leaves message pending", func(t *testing.T) {
		w, streamRepo, logRepo := newTestWorker(3)
		w.WithRetryDelay(time.Hour)
		logRepo.On("Create", ctx, mock.Anything).Return(errors.ErrDatabaseError)
		require.NoError(t, w.Stop())

		w.handle(ctx, apiLogMessage(t, "5-0"))

		logRepo.AssertNumberOfCalls(t, "Create", 1)
		streamRepo.AssertNotCalled(t, "AckMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWorker_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, streamRepo, logRepo := newTestWorker(1)
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamAPILogs, testGroup).Return(nil)
	streamRepo.On("ConsumeStream", mock.Anything, domain.StreamAPILogs, testGroup, w.ConsumerName()).Return(nil)
	streamRepo.On("AckMessage", mock.Anything, domain.StreamAPILogs, testGroup, "1-0").Return(nil)
	saved := make(chan struct{}, 1)
	logRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { saved <- struct{}{} }).
		Return(nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	streamRepo.messages <- apiLogMessage(t, "1-0")

	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("message was not saved")
	}

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorker_StartFailsWithoutGroup(t *testing.T) {
	w, streamRepo, _ := newTestWorker(1)
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamAPILogs, testGroup).Return(errors.ErrCacheError)

	err := w.Start(context.Background())

	assert.Error(t, err)
	streamRepo.AssertNotCalled(t, "ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
