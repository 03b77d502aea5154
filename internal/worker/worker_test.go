package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTasksCompleteWithoutErrors(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(5)
	ctx := context.Background()

	var counter atomic.Int32

	for range 10 {
		require.NoError(t, wp.Submit(ctx, func(context.Context) error {
			counter.Add(1)
			return nil
		}))
	}

	require.NoError(t, wp.Wait())
	assert.Equal(t, int32(10), counter.Load())
	assert.Equal(t, int64(10), wp.Completed())
	assert.Zero(t, wp.InFlight())
}

func TestSomeTasksReturnErrors(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(3)
	ctx := context.Background()

	var successCount atomic.Int32

	for i := range 10 {
		require.NoError(t, wp.Submit(ctx, func(context.Context) error {
			if i%2 == 0 {
				return errors.New("mock error")
			}

			successCount.Add(1)

			return nil
		}))
	}

	err := wp.Wait()
	require.Error(t, err)
	assert.Equal(t, int32(5), successCount.Load())

	var multiErr *errors.MultiError
	require.True(t, errors.As(err, &multiErr))
	assert.Equal(t, 5, multiErr.Len())
}

func TestConcurrencyIsBounded(t *testing.T) {
	t.Parallel()

	const width = 3

	wp := worker.NewWorkerPool(width)
	ctx := context.Background()

	var running, peak atomic.Int32

	for range 30 {
		require.NoError(t, wp.Submit(ctx, func(context.Context) error {
			now := running.Add(1)
			defer running.Add(-1)

			for {
				old := peak.Load()
				if now <= old || peak.CompareAndSwap(old, now) {
					break
				}
			}

			time.Sleep(2 * time.Millisecond)

			return nil
		}))

		assert.LessOrEqual(t, wp.InFlight(), width)
	}

	require.NoError(t, wp.Wait())
	assert.LessOrEqual(t, peak.Load(), int32(width))
	assert.Equal(t, width, wp.MaxWorkers())
}

func TestSubmitBlocksUntilContextDone(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(1)
	release := make(chan struct{})

	require.NoError(t, wp.Submit(context.Background(), func(context.Context) error {
		<-release
		return nil
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := wp.Submit(ctx, func(context.Context) error {
		t.Error("task must not run when the context ended before a worker was free")
		return nil
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, wp.Wait())
}

func TestSubmitAfterStop(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(2)
	ctx := context.Background()

	var counter atomic.Int32

	require.NoError(t, wp.Submit(ctx, func(context.Context) error {
		counter.Add(1)
		return nil
	}))

	require.NoError(t, wp.GracefulStop())

	err := wp.Submit(ctx, func(context.Context) error {
		counter.Add(1)
		return nil
	})
	require.ErrorIs(t, err, worker.ErrPoolStopped)
	require.NoError(t, wp.Wait())
	assert.Equal(t, int32(1), counter.Load())
}

func TestPanickingTaskIsReported(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(1)

	require.NoError(t, wp.Submit(context.Background(), func(context.Context) error {
		panic("digest exploded")
	}))

	err := wp.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest exploded")
}

func TestZeroWidthPoolRunsTasks(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(0)
	assert.Equal(t, 1, wp.MaxWorkers())

	var counter atomic.Int32

	for range 4 {
		require.NoError(t, wp.Submit(context.Background(), func(context.Context) error {
			counter.Add(1)
			return nil
		}))
	}

	require.NoError(t, wp.Wait())
	assert.Equal(t, int32(4), counter.Load())
}
