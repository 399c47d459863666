package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	NBAStats NBAStatsConfig
	Defaults DefaultsConfig
	HTTP     HTTPConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		NBAStats: loadNBAStats(),
		Defaults: loadDefaults(),
		HTTP:     loadHTTP(),
		Logging:  loadLogging(),
		Metrics:  loadMetrics(),
	}
}
