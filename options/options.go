// Package options provides the process-wide options that configure the behavior of hashbrute.
package options

import (
	"io"
	"os"

	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/gruntwork-io/hashbrute/pkg/log"
	"github.com/gruntwork-io/hashbrute/telemetry"
)

const (
	defaultLogLevel  = log.InfoLevel
	defaultLogFormat = log.PrettyFormat
)

// Options represents options shared by every hashbrute command.
type Options struct {
	// Logger is the logger used for diagnostics. It always writes to ErrWriter.
	Logger log.Logger

	// Writer is where results are printed.
	Writer io.Writer

	// ErrWriter is where diagnostics are printed.
	ErrWriter io.Writer

	// Telemetry configures the trace and metric exporters.
	Telemetry *telemetry.Options

	// AppVersion is the version reported by --version and attached to telemetry.
	AppVersion string

	// LogFormat is one of log.AllFormats.
	LogFormat string

	// LogLevelStr is the level given on the command line. It overrides LogLevel when set.
	LogLevelStr string

	LogLevel log.Level

	// DisableLogColors turns colors off even on a terminal.
	DisableLogColors bool
}

// NewOptions creates a new Options object with reasonable defaults for real usage.
func NewOptions() *Options {
	return NewOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewOptionsWithWriters creates a new Options object printing results to stdout and diagnostics to stderr.
func NewOptionsWithWriters(stdout, stderr io.Writer) *Options {
	return &Options{
		Logger:     log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel)),
		Writer:     stdout,
		ErrWriter:  stderr,
		LogLevel:   defaultLogLevel,
		LogFormat:  defaultLogFormat,
		AppVersion: "development",
		Telemetry: &telemetry.Options{
			Writer:         stderr,
			TraceExporter:  telemetry.NoneExporter,
			MetricExporter: telemetry.NoneExporter,
		},
	}
}

// NewOptionsForTest creates options that log at debug level in the given writers and never use colors.
func NewOptionsForTest(stdout, stderr io.Writer) *Options {
	opts := NewOptionsWithWriters(stdout, stderr)
	opts.LogLevel = log.DebugLevel
	opts.DisableLogColors = true

	if err := opts.ConfigureLogger(); err != nil {
		panic(err)
	}

	return opts
}

// ConfigureLogger applies the level, LogFormat and DisableLogColors to Logger.
func (opts *Options) ConfigureLogger() error {
	if opts.LogLevelStr != "" {
		level, err := log.ParseLevel(opts.LogLevelStr)
		if err != nil {
			return errors.New(err)
		}

		opts.LogLevel = level
	}

	formatter, err := log.NewFormatter(opts.LogFormat, opts.ErrWriter, opts.DisableLogColors)
	if err != nil {
		return errors.New(err)
	}

	opts.Logger = opts.Logger.WithOptions(
		log.WithOutput(opts.ErrWriter),
		log.WithLevel(opts.LogLevel),
		log.WithFormatter(formatter),
	)

	return nil
}
