package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/DaRealTurtyWurty/Railroad-sub001/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported on metrics.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// invocationMetrics holds the instruments recorded per tool invocation.
type invocationMetrics struct {
	invocations metric.Int64Counter
	timeouts    metric.Int64Counter
	errors      metric.Int64Counter
	duration    metric.Float64Histogram
}

var (
	metricsOnce sync.Once
	metrics     *invocationMetrics
)

// metricsInstance lazily creates the instruments on the global meter.
// Instrument creation against the no-op meter is cheap, so this is safe
// to call before InitMeter.
func metricsInstance() *invocationMetrics {
	metricsOnce.Do(func() {
		meter := Meter(tracerName)
		m := &invocationMetrics{}
		m.invocations, _ = meter.Int64Counter("tool.invocations",
			metric.WithDescription("Total number of tool invocations"),
		)
		m.timeouts, _ = meter.Int64Counter("tool.timeouts",
			metric.WithDescription("Invocations terminated by the watchdog"),
		)
		m.errors, _ = meter.Int64Counter("tool.errors",
			metric.WithDescription("Invocations that returned an error"),
		)
		m.duration, _ = meter.Float64Histogram("tool.duration",
			metric.WithDescription("Duration of tool invocations in seconds"),
			metric.WithUnit("s"),
		)
		metrics = m
	})
	return metrics
}

func (m *invocationMetrics) recordError(ctx context.Context, tool string) {
	if m.errors != nil {
		m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrTool, tool)))
	}
}

// RecordInvocation records the outcome of one tool invocation on the
// current span and the invocation instruments.
func RecordInvocation(ctx context.Context, tool string, d time.Duration, exitCode int, timedOut bool) {
	m := metricsInstance()
	attrs := metric.WithAttributes(attribute.String(AttrTool, tool))
	if m.invocations != nil {
		m.invocations.Add(ctx, 1, attrs)
	}
	if timedOut && m.timeouts != nil {
		m.timeouts.Add(ctx, 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx, d.Seconds(), attrs)
	}

	span := SpanFromContext(ctx)
	if span != nil && span.IsRecording() {
		span.SetAttributes(
			attribute.Int(AttrExitCode, exitCode),
			attribute.Bool(AttrTimedOut, timedOut),
		)
	}
}
