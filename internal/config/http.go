package config

import "strings"

// HTTPConfig holds settings for the public HTTP surface.
type HTTPConfig struct {
	CORSAllowedOrigins []string
}

func loadHTTP() HTTPConfig {
	return HTTPConfig{
		CORSAllowedOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
	}
}

func listEnvOrDefault(key, defaultValue string) []string {
	raw := envOrDefault(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{defaultValue}
	}
	return out
}
