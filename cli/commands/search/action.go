package search

import (
	"context"
	"fmt"

	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/internal/exitcode"
	engine "github.com/gruntwork-io/hashbrute/internal/search"
)

// Run searches for the plaintext and prints it, alone on its line, to opts.Writer.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := opts.Config()
	if err != nil {
		return exitcode.NewExitError(err, exitcode.ExitCodeConfigError)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	opts.Logger.Debugf("Searching %s hash %x with %d workers", cfg.Algorithm, cfg.Target, cfg.Parallelism)

	res, err := engine.Run(ctx, opts.Logger, cfg)
	if err != nil {
		return err
	}

	if !res.Found() {
		return errors.New(&exitcode.NotFoundError{Evaluated: res.Evaluated})
	}

	if _, err := fmt.Fprintln(opts.Writer, res.Plaintext); err != nil {
		return errors.New(err)
	}

	return nil
}
