package telemetry

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/gruntwork-io/hashbrute/internal/errors"
	"github.com/puzpuzpuz/xsync/v3"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const (
	durationMetricSuffix = "_duration"
	countMetricSuffix    = "_count"
)

var (
	metricNameCleanPattern     = regexp.MustCompile(`[^A-Za-z0-9_.]`)
	multipleUnderscoresPattern = regexp.MustCompile(`_+`)
)

// Meter records counters and durations. A nil Meter records nothing.
type Meter struct {
	metric.Meter
	provider   *sdkmetric.MeterProvider
	counters   *xsync.MapOf[string, metric.Int64Counter]
	histograms *xsync.MapOf[string, metric.Float64Histogram]
}

// NewMeter creates the meter provider for the exporter named in opts. It returns nil for "none".
func NewMeter(ctx context.Context, appName string, res *resource.Resource, opts *Options) (*Meter, error) {
	exporter, err := NewMetricExporter(ctx, opts)
	if err != nil {
		return nil, err
	}

	if exporter == nil {
		return nil, nil
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(time.Second))),
	)

	return newMeter(appName, provider)
}

func newMeter(appName string, provider *sdkmetric.MeterProvider) (*Meter, error) {
	return &Meter{
		Meter:      provider.Meter(appName),
		provider:   provider,
		counters:   xsync.NewMapOf[string, metric.Int64Counter](),
		histograms: xsync.NewMapOf[string, metric.Float64Histogram](),
	}, nil
}

// NewMetricExporter creates the metric exporter named in opts.
func NewMetricExporter(ctx context.Context, opts *Options) (sdkmetric.Exporter, error) {
	var (
		exporter sdkmetric.Exporter
		err      error
	)

	switch opts.MetricExporter {
	case "", NoneExporter:
		return nil, nil
	case ConsoleExporter:
		exporter, err = stdoutmetric.New(stdoutmetric.WithWriter(opts.Writer))
	case OTLPHTTPExporter:
		var config []otlpmetrichttp.Option

		if opts.ExporterEndpoint != "" {
			config = append(config, otlpmetrichttp.WithEndpoint(opts.ExporterEndpoint))
		}

		if opts.ExporterInsecureEndpoint {
			config = append(config, otlpmetrichttp.WithInsecure())
		}

		exporter, err = otlpmetrichttp.New(ctx, config...)
	case OTLPGRPCExporter:
		var config []otlpmetricgrpc.Option

		if opts.ExporterEndpoint != "" {
			config = append(config, otlpmetricgrpc.WithEndpoint(opts.ExporterEndpoint))
		}

		if opts.ExporterInsecureEndpoint {
			config = append(config, otlpmetricgrpc.WithInsecure())
		}

		exporter, err = otlpmetricgrpc.New(ctx, config...)
	default:
		return nil, errors.New(&UnknownExporterError{Kind: "metric", Name: opts.MetricExporter})
	}

	if err != nil {
		return nil, errors.New(err)
	}

	return exporter, nil
}

// Count adds n to the counter `<name>_count`.
func (meter *Meter) Count(ctx context.Context, name string, n int64, attrs map[string]any) {
	if meter == nil || meter.provider == nil {
		return
	}

	name = CleanMetricName(name + countMetricSuffix)

	counter, _ := meter.counters.LoadOrCompute(name, func() metric.Int64Counter {
		// On error the SDK hands back a usable no-op instrument.
		counter, _ := meter.Int64Counter(name)
		return counter
	})

	counter.Add(ctx, n, metric.WithAttributes(mapToAttributes(attrs)...))
}

// Time runs fn and records its duration in milliseconds in the histogram `<name>_duration`.
func (meter *Meter) Time(ctx context.Context, name string, attrs map[string]any, fn func(ctx context.Context) error) error {
	if meter == nil || meter.provider == nil {
		return fn(ctx)
	}

	name = CleanMetricName(name + durationMetricSuffix)

	histogram, _ := meter.histograms.LoadOrCompute(name, func() metric.Float64Histogram {
		histogram, _ := meter.Float64Histogram(name, metric.WithUnit("ms"))
		return histogram
	})

	startTime := time.Now()
	err := fn(ctx)

	histogram.Record(ctx, float64(time.Since(startTime).Milliseconds()), metric.WithAttributes(mapToAttributes(attrs)...))

	return err
}

// CleanMetricName replaces characters that are not valid in instrument names.
func CleanMetricName(metricName string) string {
	cleanedName := metricNameCleanPattern.ReplaceAllString(metricName, "_")
	cleanedName = multipleUnderscoresPattern.ReplaceAllString(cleanedName, "_")

	return strings.Trim(cleanedName, "_")
}
