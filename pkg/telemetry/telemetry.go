package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "opgraph"

	metricImportsTotal   = "graph.imports.total"
	metricPrunesTotal    = "graph.prunes.total"
	metricReplaceTotal   = "graph.replace.total"
	metricReplaceErrors  = "graph.replace.errors.total"
	metricReplaceDur     = "graph.replace.duration"
	metricNodesCount     = "graph.nodes.count"
	metricVariablesCount = "graph.variables.count"
)

// Provider manages OpenTelemetry setup and provides access to tracers and
// meters for one or more Graph instances.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	importsTotal  metric.Int64Counter
	prunesTotal   metric.Int64Counter
	replaceTotal  metric.Int64Counter
	replaceErrors metric.Int64Counter
	replaceDur    metric.Float64Histogram
	nodesCount    metric.Int64UpDownCounter
	variableCount metric.Int64UpDownCounter

	mu sync.RWMutex
}

// Config holds telemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	EnableTracing  bool
	EnableMetrics  bool
}

// DefaultConfig returns default telemetry configuration.
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a new telemetry provider with a Prometheus metrics
// exporter, initializing OpenTelemetry with the given configuration.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(serviceName)

	return p.createMetricInstruments()
}

func (p *Provider) createMetricInstruments() error {
	var err error

	p.importsTotal, err = p.meter.Int64Counter(
		metricImportsTotal,
		metric.WithDescription("Total number of nodes imported into a graph"),
	)
	if err != nil {
		return err
	}

	p.prunesTotal, err = p.meter.Int64Counter(
		metricPrunesTotal,
		metric.WithDescription("Total number of nodes pruned from a graph"),
	)
	if err != nil {
		return err
	}

	p.replaceTotal, err = p.meter.Int64Counter(
		metricReplaceTotal,
		metric.WithDescription("Total number of ChangeInput rewrites applied"),
	)
	if err != nil {
		return err
	}

	p.replaceErrors, err = p.meter.Int64Counter(
		metricReplaceErrors,
		metric.WithDescription("Total number of ChangeInput rewrites rejected by a feature"),
	)
	if err != nil {
		return err
	}

	p.replaceDur, err = p.meter.Float64Histogram(
		metricReplaceDur,
		metric.WithDescription("ChangeInput rewrite duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.nodesCount, err = p.meter.Int64UpDownCounter(
		metricNodesCount,
		metric.WithDescription("Current number of nodes in a graph"),
	)
	if err != nil {
		return err
	}

	p.variableCount, err = p.meter.Int64UpDownCounter(
		metricVariablesCount,
		metric.WithDescription("Current number of variables in a graph"),
	)
	return err
}

func (p *Provider) initTracing() {
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

// Tracer returns the tracer for creating spans.
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics.
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordImport records a single node import, tagged by operator name.
func (p *Provider) RecordImport(ctx context.Context, operatorName string) {
	if p.meter == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("operator.name", operatorName))
	p.importsTotal.Add(ctx, 1, attrs)
	p.nodesCount.Add(ctx, 1, attrs)
}

// RecordPrune records a single node prune, tagged by operator name.
func (p *Provider) RecordPrune(ctx context.Context, operatorName string) {
	if p.meter == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("operator.name", operatorName))
	p.prunesTotal.Add(ctx, 1, attrs)
	p.nodesCount.Add(ctx, -1, attrs)
}

// RecordVariableDelta adjusts the current variable count gauge by delta.
func (p *Provider) RecordVariableDelta(ctx context.Context, delta int64) {
	if p.meter == nil {
		return
	}
	p.variableCount.Add(ctx, delta)
}

// RecordReplace records a single ChangeInput rewrite's outcome and
// duration, tagged by the caller-supplied reason.
func (p *Provider) RecordReplace(ctx context.Context, reason string, duration time.Duration, err error) {
	if p.meter == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("reason", reason))
	p.replaceTotal.Add(ctx, 1, attrs)
	p.replaceDur.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if err != nil {
		p.replaceErrors.Add(ctx, 1, attrs)
	}
}

// Shutdown gracefully shuts down the telemetry provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}
	return nil
}
