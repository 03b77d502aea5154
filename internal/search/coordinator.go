package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/gruntwork-io/hashbrute/internal/digest"
	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/internal/product"
	"github.com/gruntwork-io/hashbrute/internal/worker"
	"github.com/gruntwork-io/hashbrute/pkg/log"
	"github.com/gruntwork-io/hashbrute/telemetry"
)

type match struct {
	plaintext string
	length    uint
}

// Coordinator owns the state of a single search: the worker pool, the shared answer and the counters.
type Coordinator struct {
	cfg       *Config
	logger    log.Logger
	telemeter *telemetry.Telemeter
	pool      *worker.Pool
	cancel    context.CancelFunc
	match     atomic.Pointer[match]
	evaluated *xsync.Counter
	exhausted *xsync.Counter
	symbols   [][]byte
	alg       digest.Algorithm
	runID     string

	evaluators sync.Pool
	batches    sync.Pool

	state atomic.Int32
	// abandoned is set when a dispatched batch was not evaluated to its end.
	abandoned atomic.Bool
}

// NewCoordinator returns a coordinator for an already validated config.
func NewCoordinator(l log.Logger, cfg *Config, alg digest.Algorithm) *Coordinator {
	runID := uuid.NewString()

	c := &Coordinator{
		cfg:   cfg,
		alg:   alg,
		runID: runID,
		logger: l.WithFields(log.Fields{
			log.FieldKeyRunID:     runID,
			log.FieldKeyAlgorithm: alg.Name,
		}),
		pool:      worker.NewWorkerPool(cfg.parallelism()),
		evaluated: xsync.NewCounter(),
		exhausted: xsync.NewCounter(),
		symbols:   make([][]byte, len(cfg.Alphabet)),
	}

	for i, r := range cfg.Alphabet {
		c.symbols[i] = utf8.AppendRune(nil, r)
	}

	c.evaluators.New = func() any {
		return NewEvaluator(alg, cfg.Target)
	}

	batchSize := cfg.batchSize()
	c.batches.New = func() any {
		return newBatch(batchSize)
	}

	return c
}

// State returns the current state of the search.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Evaluated returns the number of candidates hashed so far.
func (c *Coordinator) Evaluated() int64 {
	return c.evaluated.Value()
}

// Run performs the search. It must be called once.
func (c *Coordinator) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()

	c.telemeter = telemetry.TelemeterFromContext(ctx)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.cancel = cancel

	c.logger.Infof("Searching %s candidates of length %d to %d over %d characters",
		product.CountRange(len(c.symbols), c.cfg.MinLen, c.cfg.MaxLen), c.cfg.MinLen, c.cfg.MaxLen, len(c.symbols))

	stopProgress := c.startProgress(searchCtx, startTime)

	attrs := map[string]any{
		"run_id":  c.runID,
		"algo":    c.alg.Name,
		"min_len": c.cfg.MinLen,
		"max_len": c.cfg.MaxLen,
	}

	err := c.telemeter.Collect(searchCtx, "search", attrs, func(ctx context.Context) error {
		scheduleErr := c.schedule(ctx)
		poolErr := c.pool.GracefulStop()

		return errors.Join(scheduleErr, poolErr)
	})

	stopProgress()

	res := &Result{
		RunID:     c.runID,
		Evaluated: c.Evaluated(),
		Elapsed:   time.Since(startTime),
	}

	if err != nil && !errors.IsContextCanceled(err) {
		c.state.CompareAndSwap(int32(StateRunning), int32(StateCanceled))
		return nil, err
	}

	switch {
	case c.State() == StateFound:
		m := c.match.Load()
		res.Outcome = Found
		res.Plaintext = m.plaintext
		res.Length = m.length

		c.logger.Infof("Found plaintext of length %d after %d candidates in %s", m.length, res.Evaluated, res.Elapsed)

		return res, nil
	case c.complete() && c.state.CompareAndSwap(int32(StateRunning), int32(StateExhausted)):
		res.Outcome = NotFound

		c.logger.Infof("No plaintext found after %d candidates in %s", res.Evaluated, res.Elapsed)

		return res, nil
	}

	c.state.CompareAndSwap(int32(StateRunning), int32(StateCanceled))

	cause := context.Cause(ctx)
	if cause == nil {
		cause = context.Canceled
	}

	c.logger.Warnf("Search canceled after %d candidates in %s", res.Evaluated, res.Elapsed)

	return nil, errors.New(&CanceledError{Err: cause, Evaluated: res.Evaluated})
}

// complete reports whether every length was enumerated and every candidate evaluated.
func (c *Coordinator) complete() bool {
	return !c.abandoned.Load() && c.exhausted.Value() == c.cfg.lengths()
}

// found records the match if none was recorded yet and stops the search.
// It returns false if another worker won the race.
func (c *Coordinator) found(candidate []byte, length uint) bool {
	if !c.state.CompareAndSwap(int32(StateRunning), int32(StateFound)) {
		return false
	}

	c.match.Store(&match{plaintext: string(candidate), length: length})
	c.cancel()

	return true
}

// evaluate hashes the candidates of the batch until one matches or the search stops.
func (c *Coordinator) evaluate(ctx context.Context, b *batch) error {
	defer c.releaseBatch(b)

	if ctx.Err() != nil {
		c.abandoned.Store(true)
		return nil
	}

	ev := c.evaluators.Get().(*Evaluator) //nolint:forcetypeassert
	defer c.evaluators.Put(ev)

	var n int

	for i := range b.len() {
		if c.State() != StateRunning {
			c.abandoned.Store(true)
			break
		}

		candidate := b.at(i)
		n++

		if ev.Evaluate(candidate) {
			if c.found(candidate, b.length) {
				c.logger.Debugf("Match found at length %d", b.length)
			}

			break
		}
	}

	c.evaluated.Add(int64(n))
	c.telemeter.Count(ctx, "candidates", int64(n), map[string]any{"algo": c.alg.Name})

	return nil
}

func (c *Coordinator) acquireBatch(length uint) *batch {
	b := c.batches.Get().(*batch) //nolint:forcetypeassert
	b.reset(length)

	return b
}

func (c *Coordinator) releaseBatch(b *batch) {
	c.batches.Put(b)
}
