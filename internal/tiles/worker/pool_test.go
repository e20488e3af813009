package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsTasksWithinLimit(t *testing.T) {
	p := NewPool(2, time.Second)
	defer p.Shutdown()

	var running, peak, done atomic.Int32
	release := make(chan struct{})
	for i := 0; i < 5; i++ {
		require.True(t, p.Submit(Task{Work: func(ctx context.Context) error {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			<-release
			running.Add(-1)
			done.Add(1)
			return nil
		}}))
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	assert.Eventually(t, func() bool { return done.Load() == 5 }, time.Second, 5*time.Millisecond)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestPoolTimeoutCancelsContext(t *testing.T) {
	p := NewPool(1, 20*time.Millisecond)
	defer p.Shutdown()

	errc := make(chan error, 1)
	p.Submit(Task{Work: func(ctx context.Context) error {
		<-ctx.Done()
		errc <- ctx.Err()
		return ctx.Err()
	}})
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("task was not cancelled")
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	p := NewPool(1, time.Second)
	p.Shutdown()
	assert.False(t, p.Submit(Task{Work: func(context.Context) error { return nil }}))
}
