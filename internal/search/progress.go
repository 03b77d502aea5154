package search

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/gruntwork-io/hashbrute/internal/product"
	"github.com/gruntwork-io/hashbrute/pkg/log"
)

// startProgress logs the number of evaluated candidates, with the pool activity, every
// ProgressInterval until the returned function is called or ctx ends.
func (c *Coordinator) startProgress(ctx context.Context, startTime time.Time) func() {
	if c.cfg.ProgressInterval <= 0 {
		return func() {}
	}

	total := product.CountRange(len(c.symbols), c.cfg.MinLen, c.cfg.MaxLen)
	done := make(chan struct{})

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(c.cfg.ProgressInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.logger.WithFields(log.Fields{
					log.FieldKeyInFlight: c.pool.InFlight(),
					log.FieldKeyBatches:  c.pool.Completed(),
				}).Info(progressMessage(c.Evaluated(), total, time.Since(startTime)))
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

func progressMessage(evaluated int64, total *big.Int, elapsed time.Duration) string {
	rate := float64(evaluated)
	if secs := elapsed.Seconds(); secs > 0 {
		rate /= secs
	}

	percent := 0.0
	if total.Sign() > 0 {
		ratio := new(big.Float).Quo(new(big.Float).SetInt64(evaluated), new(big.Float).SetInt(total))
		percent, _ = ratio.Float64()
		percent *= 100
	}

	return fmt.Sprintf("Evaluated %d of %s candidates (%.4f%%, %.0f/s)", evaluated, total, percent, rate)
}
