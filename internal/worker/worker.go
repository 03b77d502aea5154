// Package worker provides a bounded pool for running tasks concurrently.
//
// Submit acquires the worker slot before it starts the goroutine, so a producer that outruns the
// workers is suspended and at most maxWorkers task goroutines are alive at any time.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gruntwork-io/hashbrute/internal/errors"
)

// ErrPoolStopped is returned by Submit once the pool has been stopped.
var ErrPoolStopped = errors.New("worker pool is stopped")

// Task is a unit of work. The context is the one given to Submit.
type Task func(ctx context.Context) error

// Pool runs tasks on at most maxWorkers goroutines.
type Pool struct {
	semaphore   chan struct{}
	allErrors   *errors.MultiError
	wg          sync.WaitGroup
	maxWorkers  int
	allErrorsMu sync.Mutex
	isStopping  atomic.Bool
	inFlight    atomic.Int64
	completed   atomic.Int64
}

// NewWorkerPool creates a pool with the given width. A width below one is raised to one.
func NewWorkerPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &Pool{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
		allErrors:  &errors.MultiError{},
	}
}

// Submit blocks until a worker is free, then runs the task on it. It returns ctx.Err() if the context
// ends first and ErrPoolStopped after Stop. A panicking task is recovered and its panic is reported
// as the task error.
func (wp *Pool) Submit(ctx context.Context, task Task) error {
	if wp.isStopping.Load() {
		return ErrPoolStopped
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case wp.semaphore <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	if wp.isStopping.Load() {
		<-wp.semaphore
		return ErrPoolStopped
	}

	wp.wg.Add(1)
	wp.inFlight.Add(1)

	go func() {
		defer func() {
			wp.inFlight.Add(-1)
			wp.completed.Add(1)
			<-wp.semaphore
			wp.wg.Done()
		}()

		wp.appendError(wp.run(ctx, task))
	}()

	return nil
}

func (wp *Pool) run(ctx context.Context, task Task) (err error) {
	defer errors.Recover(func(cause error) {
		err = cause
	})

	return task(ctx)
}

func (wp *Pool) appendError(err error) {
	if err == nil {
		return
	}

	wp.allErrorsMu.Lock()
	wp.allErrors = wp.allErrors.Append(err)
	wp.allErrorsMu.Unlock()
}

// Wait blocks until every submitted task has returned and reports the collected errors.
// It must not be called concurrently with Submit.
func (wp *Pool) Wait() error {
	wp.wg.Wait()

	wp.allErrorsMu.Lock()
	defer wp.allErrorsMu.Unlock()

	return wp.allErrors.ErrorOrNil()
}

// Stop rejects further submissions. Tasks already running are left to finish.
func (wp *Pool) Stop() {
	wp.isStopping.Store(true)
}

// GracefulStop rejects further submissions and waits for the running tasks.
func (wp *Pool) GracefulStop() error {
	wp.Stop()

	return wp.Wait()
}

// MaxWorkers returns the pool width.
func (wp *Pool) MaxWorkers() int {
	return wp.maxWorkers
}

// InFlight returns the number of tasks currently running.
func (wp *Pool) InFlight() int {
	return int(wp.inFlight.Load())
}

// Completed returns the number of tasks that have returned.
func (wp *Pool) Completed() int64 {
	return wp.completed.Load()
}
