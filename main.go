package main

import (
	"context"
	"os"

	"github.com/gruntwork-io/hashbrute/cli"
	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/internal/exitcode"
	"github.com/gruntwork-io/hashbrute/internal/os/signal"
	"github.com/gruntwork-io/hashbrute/options"
	"github.com/gruntwork-io/hashbrute/pkg/log"
	"github.com/gruntwork-io/hashbrute/util"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "development"

// The main entrypoint for hashbrute
func main() {
	opts := options.NewOptions()
	opts.AppVersion = Version

	defer errors.Recover(func(cause error) {
		checkForErrorsAndExit(opts.Logger)(cause)
	})

	app := cli.NewApp(opts)

	ctx, stop := setupContext(opts)
	err := app.RunContext(ctx, os.Args)

	stop()
	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with the code matching its kind. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(int(exitcode.ExitCodeSuccess))
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(int(exitcode.Get(err)))
	}
}

// setupContext returns a context canceled on interrupt, carrying the logger.
func setupContext(opts *options.Options) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(context.Background())

	stopSignals := util.RegisterSignalHandler(func(sig os.Signal) {
		opts.Logger.Warnf("%s received, stopping the search", sig)
		cancel(signal.NewContextCanceledCause(sig))
	}, signal.InterruptSignals...)

	ctx = log.ContextWithLogger(ctx, opts.Logger)

	return ctx, func() {
		stopSignals()
		cancel(nil)
	}
}
