package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gruntwork-io/hashbrute/internal/product"
	"github.com/gruntwork-io/hashbrute/pkg/log"
)

// schedule runs one enumeration task per length, at most as many at once as the pool is wide.
// The batches outlive the group, so they are bound to ctx and not to a group context.
func (c *Coordinator) schedule(ctx context.Context) error {
	var g errgroup.Group

	g.SetLimit(c.pool.MaxWorkers())

	for length := c.cfg.MinLen; ; length++ {
		if ctx.Err() != nil || c.State() != StateRunning {
			break
		}

		g.Go(func() error {
			return c.enumerate(ctx, length)
		})

		if length == c.cfg.MaxLen {
			break
		}
	}

	return g.Wait()
}

// enumerate generates every candidate of the given length in odometer order and dispatches them in
// batches. The length counts as exhausted only if every batch was handed to the pool.
func (c *Coordinator) enumerate(ctx context.Context, length uint) error {
	attrs := map[string]any{
		"run_id": c.runID,
		"length": length,
	}

	return c.telemeter.Trace(ctx, "search_length", attrs, func(ctx context.Context) error {
		logger := c.logger.WithField(log.FieldKeyLength, length)
		logger.Debugf("Enumerating %s candidates", product.Count(len(c.symbols), length))

		cursor := product.NewCursor(c.symbols, length)
		b := c.acquireBatch(length)

		for cursor.Next() {
			b.add(cursor.Value())

			if !b.full() {
				continue
			}

			if !c.dispatch(ctx, b) {
				logger.Debugf("Enumeration stopped")
				return nil
			}

			b = c.acquireBatch(length)
		}

		if b.len() > 0 {
			if !c.dispatch(ctx, b) {
				logger.Debugf("Enumeration stopped")
				return nil
			}
		} else {
			c.releaseBatch(b)
		}

		c.exhausted.Inc()
		logger.Debugf("All candidates dispatched")

		return nil
	})
}

// dispatch hands the batch to the pool. It returns false once the search is over.
func (c *Coordinator) dispatch(ctx context.Context, b *batch) bool {
	if ctx.Err() != nil || c.State() != StateRunning {
		c.releaseBatch(b)
		return false
	}

	err := c.pool.Submit(ctx, func(ctx context.Context) error {
		return c.evaluate(ctx, b)
	})
	if err != nil {
		c.releaseBatch(b)
		return false
	}

	return true
}
