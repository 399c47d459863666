package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "nba-stats-service",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
	defer shutdown(context.Background())

	rec.RecordHTTPRequest("GET", "/teams", 200, time.Millisecond)
	rec.RecordProviderCall("nbastats", "commonallplayers", time.Millisecond, nil)
	rec.RecordRateLimit("nbastats", time.Second)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics handler, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "upstream_calls_total") {
		t.Fatalf("expected upstream call counter in scrape output")
	}
}

func TestSetupPropagatesReaderError(t *testing.T) {
	orig := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("reader failed")
	}
	defer func() { promReaderFactory = orig }()

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected reader error to propagate")
	}
}

func TestSetupPassesExportIntervalToOTLPReader(t *testing.T) {
	orig := otlpReaderFactory
	var gotInterval time.Duration
	var gotEndpoint string
	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool, interval time.Duration) (sdkmetric.Reader, error) {
		gotEndpoint, gotInterval = endpoint, interval
		return sdkmetric.NewManualReader(), nil
	}
	defer func() { otlpReaderFactory = orig }()

	_, _, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:        true,
		OtlpEndpoint:   "collector:4318",
		ExportInterval: time.Minute,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background())

	if gotEndpoint != "collector:4318" || gotInterval != time.Minute {
		t.Fatalf("unexpected otlp reader args endpoint=%s interval=%s", gotEndpoint, gotInterval)
	}
}

func TestSetupPropagatesOTLPReaderError(t *testing.T) {
	orig := otlpReaderFactory
	otlpReaderFactory = func(context.Context, string, bool, time.Duration) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp failed")
	}
	defer func() { otlpReaderFactory = orig }()

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318"}); err == nil {
		t.Fatalf("expected otlp error to propagate")
	}
}

func TestSetupPropagatesInstrumentError(t *testing.T) {
	orig := instrumentFactory
	instrumentFactory = func(metric.MeterProvider) (*instruments, error) {
		return nil, errors.New("instrument failed")
	}
	defer func() { instrumentFactory = orig }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil || !strings.Contains(err.Error(), "instrument failed") {
		t.Fatalf("expected instrument error, got %v", err)
	}
}

func TestHistogramsRecordSubMillisecondPrecision(t *testing.T) {
	if got := millis(1500 * time.Microsecond); got != 1.5 {
		t.Fatalf("expected 1.5ms, got %v", got)
	}
}
