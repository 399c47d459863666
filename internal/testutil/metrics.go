package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
)

// NewScrapedRecorder returns a recorder backed by a real Prometheus exporter
// and a function that returns the current scrape output.
func NewScrapedRecorder(t *testing.T) (*metrics.Recorder, func() string) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "nba-stats-service-test",
	})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	return rec, func() string {
		return Serve(handler, http.MethodGet, "/metrics", nil).Body.String()
	}
}
