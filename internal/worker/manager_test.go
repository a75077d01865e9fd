package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingWorker runs until stopped
type blockingWorker struct {
	*BaseWorker
	started chan struct{}
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{
		BaseWorker: NewBaseWorker(name, "group", zap.NewNop()),
		started:    make(chan struct{}),
	}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	close(w.started)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(time.Second, zap.NewNop())
	first := newBlockingWorker("first")
	second := newBlockingWorker("second")
	m.Register(first)
	m.Register(second)

	require.NoError(t, m.Start(context.Background()))
	<-first.started
	<-second.started

	require.NoError(t, m.Stop())
	assert.True(t, first.IsStopped())
	assert.True(t, second.IsStopped())

	// repeated stop is a no-op
	assert.NoError(t, first.Stop())
}

func TestWorkerManager_StartWithoutWorkers(t *testing.T) {
	m := NewWorkerManager(0, zap.NewNop())

	assert.ErrorIs(t, m.Start(context.Background()), ErrNoWorkers)
}

func TestBaseWorker_Wait(t *testing.T) {
	w := NewBaseWorker("wait", "group", zap.NewNop())

	assert.True(t, w.Wait(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, w.Wait(ctx, time.Hour))

	require.NoError(t, w.Stop())
	assert.False(t, w.Wait(context.Background(), time.Hour))
}

func TestBaseWorker_ConsumerName(t *testing.T) {
	a := NewBaseWorker("a", "group", zap.NewNop())
	b := NewBaseWorker("b", "group", zap.NewNop())

	assert.NotEmpty(t, a.ConsumerName())
	assert.NotEqual(t, a.ConsumerName(), b.ConsumerName())
}
