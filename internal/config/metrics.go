package config

import "time"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled     bool
	Port        string
	Path        string
	ServiceName string
	// OTLP push is enabled only when OtlpEndpoint is set.
	OtlpEndpoint   string
	OtlpInsecure   bool
	ExportInterval time.Duration
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:        boolEnvOrDefault(envMetricsOn, true),
		Port:           envOrDefault(envMetricsPort, defaultMetricsPort),
		Path:           envOrDefault(envMetricsPath, defaultMetricsPath),
		ServiceName:    envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint:   envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure:   boolEnvOrDefault(envOtelInsecure, true),
		ExportInterval: durationEnvOrDefault(envOtelInterval, defaultExportInterval),
	}
}
