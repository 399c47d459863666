package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultExportInterval = 15 * time.Second

// Swapped in tests.
var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled        bool
	Port           string
	ServiceName    string
	OtlpEndpoint   string
	OtlpInsecure   bool
	ExportInterval time.Duration
}

// Setup wires a meter provider that is always scraped through Prometheus and
// optionally pushed to an OTLP collector. Disabled telemetry yields an
// in-memory Recorder, a nil handler, and a no-op shutdown.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	provider, scrape, err := newMeterProvider(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, err
	}
	return newRecorder(inst), scrape, provider.Shutdown, nil
}

func newMeterProvider(ctx context.Context, cfg TelemetryConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = meterName
	}

	promReader, scrape, err := promReaderFactory()
	if err != nil {
		return nil, nil, fmt.Errorf("prometheus exporter: %w", err)
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		pushReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure, cfg.ExportInterval)
		if err != nil {
			return nil, nil, fmt.Errorf("otlp exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(pushReader))
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, nil, fmt.Errorf("telemetry resource: %w", err)
	}
	opts = append(opts, sdkmetric.WithResource(res))

	return sdkmetric.NewMeterProvider(opts...), scrape, nil
}

// prometheusComponents uses a private registry so repeated setups never
// collide on the global default registerer.
func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exporter, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exporter, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool, interval time.Duration) (sdkmetric.Reader, error) {
	if interval <= 0 {
		interval = defaultExportInterval
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)), nil
}

type instruments struct {
	requests        metric.Int64Counter
	requestLatency  metric.Float64Histogram
	upstreamCalls   metric.Int64Counter
	upstreamErrors  metric.Int64Counter
	upstreamLatency metric.Float64Histogram
	rateLimited     metric.Int64Counter
	retryAfter      metric.Float64Histogram
}

type counterDef struct {
	dst  *metric.Int64Counter
	name string
	desc string
}

type histogramDef struct {
	dst  *metric.Float64Histogram
	name string
	desc string
}

func newInstruments(provider metric.MeterProvider) (*instruments, error) {
	meter := provider.Meter(meterName)
	inst := &instruments{}

	counters := []counterDef{
		{&inst.requests, "http_requests_total", "Requests served, by route and status."},
		{&inst.upstreamCalls, "upstream_calls_total", "Calls made to the NBA data provider."},
		{&inst.upstreamErrors, "upstream_errors_total", "Provider calls that returned an error."},
		{&inst.rateLimited, "upstream_rate_limit_hits_total", "Provider responses with status 429."},
	}
	for _, def := range counters {
		c, err := meter.Int64Counter(def.name, metric.WithDescription(def.desc))
		if err != nil {
			return nil, fmt.Errorf("counter %s: %w", def.name, err)
		}
		*def.dst = c
	}

	histograms := []histogramDef{
		{&inst.requestLatency, "http_request_duration_ms", "Request handling time in milliseconds."},
		{&inst.upstreamLatency, "upstream_duration_ms", "Provider call time in milliseconds."},
		{&inst.retryAfter, "upstream_retry_after_ms", "Retry-After advertised on 429 responses, in milliseconds."},
	}
	for _, def := range histograms {
		h, err := meter.Float64Histogram(def.name, metric.WithDescription(def.desc))
		if err != nil {
			return nil, fmt.Errorf("histogram %s: %w", def.name, err)
		}
		*def.dst = h
	}
	return inst, nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (i *instruments) httpRequest(method, route string, status int, duration time.Duration) {
	if i == nil {
		return
	}
	set := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, route),
		attribute.Int(AttrStatus, status),
	)
	ctx := context.Background()
	i.requests.Add(ctx, 1, set)
	i.requestLatency.Record(ctx, millis(duration), set)
}

func (i *instruments) upstreamCall(provider, endpoint string, duration time.Duration, failed bool) {
	if i == nil {
		return
	}
	set := metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrEndpoint, endpoint),
	)
	ctx := context.Background()
	i.upstreamCalls.Add(ctx, 1, set)
	i.upstreamLatency.Record(ctx, millis(duration), set)
	if failed {
		i.upstreamErrors.Add(ctx, 1, set)
	}
}

func (i *instruments) throttled(provider string, retryAfter time.Duration) {
	if i == nil {
		return
	}
	set := metric.WithAttributes(attribute.String(AttrProvider, provider))
	ctx := context.Background()
	i.rateLimited.Add(ctx, 1, set)
	if retryAfter > 0 {
		i.retryAfter.Record(ctx, millis(retryAfter), set)
	}
}
