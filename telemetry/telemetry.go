// Package telemetry collects traces and metrics of a search through OpenTelemetry.
//
// Exporters are chosen by name (none, console, otlpHttp, otlpGrpc). A Telemeter whose exporters are
// all "none" is valid and costs a nil check per call, so the search engine can instrument itself
// unconditionally.
package telemetry

import (
	"context"
	"io"

	"github.com/gruntwork-io/hashbrute/internal/errors"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// Options configure the exporters.
type Options struct {
	// Writer receives the console exporters output.
	Writer io.Writer

	// TraceExporter is the name of the span exporter.
	TraceExporter string

	// MetricExporter is the name of the metric exporter.
	MetricExporter string

	// ExporterEndpoint overrides the OTLP endpoint, host:port.
	ExporterEndpoint string

	// ExporterInsecureEndpoint disables TLS towards the OTLP endpoint.
	ExporterInsecureEndpoint bool
}

// Telemeter bundles the tracer and the meter of the application.
type Telemeter struct {
	*Tracer
	*Meter
}

// NewTelemeter creates the providers and exporters described by opts.
func NewTelemeter(ctx context.Context, appName, appVersion string, opts *Options) (*Telemeter, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(appName),
		semconv.ServiceVersion(appVersion),
	)

	tracer, err := NewTracer(ctx, appName, res, opts)
	if err != nil {
		return nil, err
	}

	meter, err := NewMeter(ctx, appName, res, opts)
	if err != nil {
		return nil, err
	}

	return &Telemeter{Tracer: tracer, Meter: meter}, nil
}

// NewTelemeterWithProviders wraps already configured providers. Either may be nil.
func NewTelemeterWithProviders(appName string, tracerProvider *sdktrace.TracerProvider, meterProvider *sdkmetric.MeterProvider) (*Telemeter, error) {
	tlm := &Telemeter{}

	if tracerProvider != nil {
		tlm.Tracer = newTracer(appName, tracerProvider)
	}

	if meterProvider != nil {
		meter, err := newMeter(appName, meterProvider)
		if err != nil {
			return nil, err
		}

		tlm.Meter = meter
	}

	return tlm, nil
}

// Shutdown flushes and stops the providers.
func (tlm *Telemeter) Shutdown(ctx context.Context) error {
	if tlm == nil {
		return nil
	}

	var errs *errors.MultiError

	if tlm.Tracer != nil && tlm.Tracer.provider != nil {
		errs = errs.Append(tlm.Tracer.provider.Shutdown(ctx))
		tlm.Tracer.provider = nil
	}

	if tlm.Meter != nil && tlm.Meter.provider != nil {
		errs = errs.Append(tlm.Meter.provider.Shutdown(ctx))
		tlm.Meter.provider = nil
	}

	if err := errs.ErrorOrNil(); err != nil {
		return errors.New(err)
	}

	return nil
}

// Collect runs fn inside a span and records its duration.
func (tlm *Telemeter) Collect(ctx context.Context, name string, attrs map[string]any, fn func(ctx context.Context) error) error {
	return tlm.Trace(ctx, name, attrs, func(ctx context.Context) error {
		return tlm.Time(ctx, name, attrs, fn)
	})
}
