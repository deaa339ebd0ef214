package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	started atomic.Bool
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{BaseWorker: NewBaseWorker(name, "group", zap.NewNop())}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-w.StopChan():
	case <-ctx.Done():
	}
	return nil
}

func TestWorkerManager_StartWithoutWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	first := newBlockingWorker("first")
	second := newBlockingWorker("second")
	m.Register(first)
	m.Register(second)

	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, m.Stop())

	assert.True(t, first.IsStopped())
	assert.True(t, second.IsStopped())
}

func TestBaseWorker_StopIsIdempotent(t *testing.T) {
	w := NewBaseWorker("w", "group", zap.NewNop())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
}

type stuckWorker struct {
	*BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(ctx context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	m.SetShutdownTimeout(20 * time.Millisecond)

	w := &stuckWorker{BaseWorker: NewBaseWorker("stuck", "group", zap.NewNop()), release: make(chan struct{})}
	defer close(w.release)
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Stop())
}
