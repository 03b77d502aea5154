// Package search provides the default hashbrute command: recover the plaintext of a hash by
// exhaustive search.
package search

import (
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/hashbrute/cli/flags"
	"github.com/gruntwork-io/hashbrute/internal/digest"
	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/internal/exitcode"
	"github.com/gruntwork-io/hashbrute/options"
)

const (
	CommandName = "search"

	AlgorithmFlagName        = "algo"
	MinLenFlagName           = "min-len"
	MaxLenFlagName           = "max-len"
	DictionaryFlagName       = "dictionary"
	ParallelismFlagName      = "parallelism"
	BatchSizeFlagName        = "batch-size"
	TimeoutFlagName          = "timeout"
	ProgressIntervalFlagName = "progress-interval"
)

// NewFlags returns the search flags, each one also read from its HASHBRUTE_ environment variable.
func NewFlags(opts *Options) []cli.Flag {
	return newFlags(opts, flags.EnvVarsWithHashbrutePrefix)
}

// newFlags builds the search flags. envVars returns the environment variables of a flag name.
func newFlags(opts *Options, envVars func(names ...string) []string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        AlgorithmFlagName,
			Aliases:     []string{"a"},
			EnvVars:     envVars(AlgorithmFlagName),
			Destination: &opts.Algorithm,
			Value:       opts.Algorithm,
			Usage:       "Digest algorithm of the hash. Run `hashbrute algorithms` for the list.",
		},
		&cli.UintFlag{
			Name:        MinLenFlagName,
			EnvVars:     envVars(MinLenFlagName),
			Destination: &opts.MinLen,
			Value:       opts.MinLen,
			Usage:       "Minimum length of the plaintext.",
		},
		&cli.UintFlag{
			Name:        MaxLenFlagName,
			EnvVars:     envVars(MaxLenFlagName),
			Destination: &opts.MaxLen,
			Value:       opts.MaxLen,
			Usage:       "Maximum length of the plaintext.",
		},
		&cli.StringFlag{
			Name:        DictionaryFlagName,
			Aliases:     []string{"d"},
			EnvVars:     envVars(DictionaryFlagName),
			Destination: &opts.Dictionary,
			Value:       opts.Dictionary,
			DefaultText: "printable ASCII",
			Usage:       "Characters the plaintext is made of.",
		},
		&cli.IntFlag{
			Name:        ParallelismFlagName,
			Aliases:     []string{"p"},
			EnvVars:     envVars(ParallelismFlagName),
			Destination: &opts.Parallelism,
			Value:       opts.Parallelism,
			DefaultText: "number of CPUs",
			Usage:       "Number of candidate batches hashed at the same time.",
		},
		&cli.IntFlag{
			Name:        BatchSizeFlagName,
			EnvVars:     envVars(BatchSizeFlagName),
			Destination: &opts.BatchSize,
			Value:       opts.BatchSize,
			Usage:       "Number of candidates per unit of work.",
		},
		&cli.DurationFlag{
			Name:        TimeoutFlagName,
			EnvVars:     envVars(TimeoutFlagName),
			Destination: &opts.Timeout,
			Usage:       "Gives up after the given duration, e.g. 90s or 2h. Zero means never.",
		},
		&cli.DurationFlag{
			Name:        ProgressIntervalFlagName,
			EnvVars:     envVars(ProgressIntervalFlagName),
			Destination: &opts.ProgressInterval,
			Usage:       "Logs the search progress at the given period. Zero disables it.",
		},
	}
}

// NewCommand returns the search command. Search flags given before the command name apply unless the
// command sets them again. Their environment variables are read by the app level flags only.
func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := NewOptions(opts)
	before := Before(cmdOpts)

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Find the plaintext of a hash.",
		ArgsUsage: "<hash>",
		Flags:     newFlags(cmdOpts, func(...string) []string { return nil }),
		Before: func(ctx *cli.Context) error {
			if err := inheritFlags(ctx); err != nil {
				return exitcode.NewExitError(err, exitcode.ExitCodeConfigError)
			}

			return before(ctx)
		},
		Action: Action(cmdOpts),
		Description: fmt.Sprintf("Tries every string over the dictionary, from --%s to --%s characters, until one hashes to <hash>.\n"+
			"Supported algorithms: %s.", MinLenFlagName, MaxLenFlagName, strings.Join(digest.Names(), ", ")),
	}
}

// inheritFlags copies the value of every command flag that was not given after the command name but
// was set, on the command line or through the environment, on the parent command.
func inheritFlags(ctx *cli.Context) error {
	lineage := ctx.Lineage()
	if len(lineage) < 2 { //nolint:mnd
		return nil
	}

	parent := lineage[1]
	local := ctx.LocalFlagNames()

	for _, flag := range ctx.Command.Flags {
		names := flag.Names()
		name := names[0]

		isLocal := slices.ContainsFunc(names, func(alias string) bool {
			return slices.Contains(local, alias)
		})

		if isLocal || !parent.IsSet(name) {
			continue
		}

		if err := ctx.Set(name, fmt.Sprint(parent.Value(name))); err != nil {
			return errors.New(err)
		}
	}

	return nil
}

// Before takes the hash from the arguments.
func Before(opts *Options) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return exitcode.NewExitError(&ArgsError{Args: ctx.Args().Slice()}, exitcode.ExitCodeConfigError)
		}

		opts.Hash = ctx.Args().First()

		return nil
	}
}

// Action runs the search.
func Action(opts *Options) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		return Run(ctx.Context, opts)
	}
}
