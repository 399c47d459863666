package config

import "time"

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envStatsBaseURL   = "NBA_STATS_BASE_URL"
	envLiveBaseURL    = "NBA_LIVE_BASE_URL"
	envStatsTimeout   = "NBA_STATS_TIMEOUT"
	envStatsUserAgent = "NBA_STATS_USER_AGENT"
	envTimezone       = "NBA_TIMEZONE"
	envDefaultSeason  = "DEFAULT_SEASON"
	envDefaultLeague  = "DEFAULT_LEAGUE_ID"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envMetricsPath    = "METRICS_PATH"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envOtelInterval   = "OTEL_METRIC_EXPORT_INTERVAL"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"

	defaultPort         = "5000"
	defaultProvider     = ProviderNBAStats
	defaultStatsBaseURL = "https://stats.nba.com/stats"
	defaultLiveBaseURL  = "https://cdn.nba.com/static/json/liveData"
	// stats.nba.com is slow and occasionally hangs; keep a generous ceiling.
	defaultStatsTimeout   = 30 * time.Second
	defaultTimezone       = "America/New_York"
	defaultLeagueID       = "00"
	defaultCORSOrigins    = "*"
	defaultMetricsPort    = "9090"
	defaultMetricsPath    = "/metrics"
	defaultExportInterval = 15 * time.Second
	defaultServiceName    = "nba-stats-service"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"

	// ProviderNBAStats talks to stats.nba.com and the live CDN.
	ProviderNBAStats = "nbastats"
	// ProviderFixture serves canned data for local development.
	ProviderFixture = "fixture"
)
