// Package cli assembles the hashbrute command line application.
package cli

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/hashbrute/cli/commands/algorithms"
	"github.com/gruntwork-io/hashbrute/cli/commands/search"
	"github.com/gruntwork-io/hashbrute/cli/flags/global"
	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/internal/exitcode"
	"github.com/gruntwork-io/hashbrute/options"
	"github.com/gruntwork-io/hashbrute/pkg/log"
	"github.com/gruntwork-io/hashbrute/telemetry"
)

const AppName = "hashbrute"

// NewApp creates the hashbrute CLI App. Without a command it runs the search command.
func NewApp(opts *options.Options) *cli.App {
	searchOpts := search.NewOptions(opts)

	app := cli.NewApp()
	app.Name = AppName
	app.Usage = "Recovers a short plaintext from its hash by trying every candidate over a dictionary."
	app.UsageText = "hashbrute [global options] [search options] <hash>\n   hashbrute algorithms"
	app.Version = opts.AppVersion
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	app.Flags = append(global.NewFlags(opts), search.NewFlags(searchOpts)...)
	app.Commands = []*cli.Command{
		search.NewCommand(opts),
		algorithms.NewCommand(opts),
	}
	app.Before = beforeAction(opts)
	app.After = afterAction(opts)
	app.OnUsageError = func(_ *cli.Context, err error, _ bool) error {
		return exitcode.NewExitError(err, exitcode.ExitCodeConfigError)
	}

	// Errors are reported by the caller, which picks the exit code.
	app.ExitErrHandler = func(*cli.Context, error) {}

	defaultBefore := search.Before(searchOpts)
	defaultAction := search.Action(searchOpts)

	app.Action = func(ctx *cli.Context) error {
		if err := defaultBefore(ctx); err != nil {
			return err
		}

		return defaultAction(ctx)
	}

	return app
}

// beforeAction configures the logger and starts the telemetry once the global flags are parsed.
func beforeAction(opts *options.Options) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if err := opts.ConfigureLogger(); err != nil {
			return exitcode.NewExitError(err, exitcode.ExitCodeConfigError)
		}

		tlm, err := telemetry.NewTelemeter(ctx.Context, AppName, opts.AppVersion, opts.Telemetry)
		if err != nil {
			return exitcode.NewExitError(err, exitcode.ExitCodeConfigError)
		}

		ctx.Context = telemetry.ContextWithTelemeter(ctx.Context, tlm)
		ctx.Context = log.ContextWithLogger(ctx.Context, opts.Logger)

		return nil
	}
}

// afterAction flushes the telemetry.
func afterAction(opts *options.Options) cli.AfterFunc {
	return func(ctx *cli.Context) error {
		tlm := telemetry.TelemeterFromContext(ctx.Context)

		// The command context may already be canceled by a signal or a deadline.
		if err := tlm.Shutdown(context.WithoutCancel(ctx.Context)); err != nil {
			opts.Logger.WithError(errors.New(err)).Warn("Failed to flush telemetry")
		}

		return nil
	}
}
