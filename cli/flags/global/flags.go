// Package global provides CLI global flags.
package global

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/hashbrute/cli/flags"
	"github.com/gruntwork-io/hashbrute/options"
	"github.com/gruntwork-io/hashbrute/pkg/log"
	"github.com/gruntwork-io/hashbrute/telemetry"
)

const (
	// Logs related flags.

	LogLevelFlagName  = "log-level"
	LogFormatFlagName = "log-format"
	NoColorFlagName   = "no-color"

	// Telemetry flags.

	TelemetryTraceExporterFlagName            = "telemetry-trace-exporter"
	TelemetryMetricExporterFlagName           = "telemetry-metric-exporter"
	TelemetryExporterEndpointFlagName         = "telemetry-exporter-endpoint"
	TelemetryExporterInsecureEndpointFlagName = "telemetry-exporter-insecure-endpoint"
)

var exporters = []string{
	telemetry.NoneExporter,
	telemetry.ConsoleExporter,
	telemetry.OTLPHTTPExporter,
	telemetry.OTLPGRPCExporter,
}

// NewFlags creates and returns global flags.
func NewFlags(opts *options.Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        LogLevelFlagName,
			EnvVars:     flags.EnvVarsWithHashbrutePrefix(LogLevelFlagName),
			Destination: &opts.LogLevelStr,
			Value:       opts.LogLevel.String(),
			Usage:       fmt.Sprintf("Sets the logging level. Supported levels: %s.", log.AllLevels),
			Category:    "Logging",
		},
		&cli.StringFlag{
			Name:        LogFormatFlagName,
			EnvVars:     flags.EnvVarsWithHashbrutePrefix(LogFormatFlagName),
			Destination: &opts.LogFormat,
			Value:       opts.LogFormat,
			Usage:       fmt.Sprintf("Sets the log format. Supported formats: %s.", strings.Join(log.AllFormats, ", ")),
			Category:    "Logging",
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     flags.EnvVarsWithHashbrutePrefix(NoColorFlagName),
			Destination: &opts.DisableLogColors,
			Usage:       "Disables colors in the logs.",
			Category:    "Logging",
		},

		// Telemetry related flags.

		&cli.StringFlag{
			Name:        TelemetryTraceExporterFlagName,
			EnvVars:     flags.EnvVarsWithHashbrutePrefix(TelemetryTraceExporterFlagName),
			Destination: &opts.Telemetry.TraceExporter,
			Value:       opts.Telemetry.TraceExporter,
			Usage:       fmt.Sprintf("Exporter of the search traces. Supported exporters: %s.", strings.Join(exporters, ", ")),
			Category:    "Telemetry",
		},
		&cli.StringFlag{
			Name:        TelemetryMetricExporterFlagName,
			EnvVars:     flags.EnvVarsWithHashbrutePrefix(TelemetryMetricExporterFlagName),
			Destination: &opts.Telemetry.MetricExporter,
			Value:       opts.Telemetry.MetricExporter,
			Usage:       fmt.Sprintf("Exporter of the search metrics. Supported exporters: %s.", strings.Join(exporters, ", ")),
			Category:    "Telemetry",
		},
		&cli.StringFlag{
			Name:        TelemetryExporterEndpointFlagName,
			EnvVars:     flags.EnvVarsWithHashbrutePrefix(TelemetryExporterEndpointFlagName),
			Destination: &opts.Telemetry.ExporterEndpoint,
			Usage:       "Endpoint of the OTLP exporters, host:port.",
			Category:    "Telemetry",
		},
		&cli.BoolFlag{
			Name:        TelemetryExporterInsecureEndpointFlagName,
			EnvVars:     flags.EnvVarsWithHashbrutePrefix(TelemetryExporterInsecureEndpointFlagName),
			Destination: &opts.Telemetry.ExporterInsecureEndpoint,
			Usage:       "Connects to the OTLP endpoint without TLS.",
			Category:    "Telemetry",
		},
	}
}
