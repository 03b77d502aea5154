package telemetry

import (
	"context"

	"github.com/gruntwork-io/hashbrute/internal/errors"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Exporter names accepted by Options.TraceExporter and Options.MetricExporter.
const (
	NoneExporter     = "none"
	ConsoleExporter  = "console"
	OTLPHTTPExporter = "otlpHttp"
	OTLPGRPCExporter = "otlpGrpc"
)

// Exporters lists the accepted exporter names.
var Exporters = []string{NoneExporter, ConsoleExporter, OTLPHTTPExporter, OTLPGRPCExporter}

// Tracer opens spans. A nil Tracer runs the traced functions without spans.
type Tracer struct {
	trace.Tracer
	provider *sdktrace.TracerProvider
}

// NewTracer creates the trace provider for the exporter named in opts. It returns nil for "none".
func NewTracer(ctx context.Context, appName string, res *resource.Resource, opts *Options) (*Tracer, error) {
	exporter, err := NewTraceExporter(ctx, opts)
	if err != nil {
		return nil, err
	}

	if exporter == nil {
		return nil, nil
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return newTracer(appName, provider), nil
}

func newTracer(appName string, provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		Tracer:   provider.Tracer(appName),
		provider: provider,
	}
}

// NewTraceExporter creates the span exporter named in opts.
func NewTraceExporter(ctx context.Context, opts *Options) (sdktrace.SpanExporter, error) {
	var (
		exporter sdktrace.SpanExporter
		err      error
	)

	switch opts.TraceExporter {
	case "", NoneExporter:
		return nil, nil
	case ConsoleExporter:
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(opts.Writer))
	case OTLPHTTPExporter:
		var config []otlptracehttp.Option

		if opts.ExporterEndpoint != "" {
			config = append(config, otlptracehttp.WithEndpoint(opts.ExporterEndpoint))
		}

		if opts.ExporterInsecureEndpoint {
			config = append(config, otlptracehttp.WithInsecure())
		}

		exporter, err = otlptracehttp.New(ctx, config...)
	case OTLPGRPCExporter:
		var config []otlptracegrpc.Option

		if opts.ExporterEndpoint != "" {
			config = append(config, otlptracegrpc.WithEndpoint(opts.ExporterEndpoint))
		}

		if opts.ExporterInsecureEndpoint {
			config = append(config, otlptracegrpc.WithInsecure())
		}

		exporter, err = otlptracegrpc.New(ctx, config...)
	default:
		return nil, errors.New(&UnknownExporterError{Kind: "trace", Name: opts.TraceExporter})
	}

	if err != nil {
		return nil, errors.New(err)
	}

	return exporter, nil
}

// Trace runs fn inside a span named name. Errors returned by fn are recorded on the span.
func (tracer *Tracer) Trace(ctx context.Context, name string, attrs map[string]any, fn func(ctx context.Context) error) error {
	if tracer == nil || tracer.provider == nil {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(mapToAttributes(attrs)...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}
