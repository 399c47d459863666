package config

import "time"

// NBAStatsConfig controls how we talk to stats.nba.com and the live data CDN.
type NBAStatsConfig struct {
	BaseURL     string
	LiveBaseURL string
	Timeout     time.Duration
	UserAgent   string
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:     envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		LiveBaseURL: envOrDefault(envLiveBaseURL, defaultLiveBaseURL),
		Timeout:     durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		UserAgent:   envOrDefault(envStatsUserAgent, ""),
	}
}
