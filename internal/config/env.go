package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv returns the trimmed value of key, reporting false when it is unset or blank.
func lookupEnv(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

// parsedEnv applies parse to the variable; unset or unparseable values yield def.
func parsedEnv[T any](key string, def T, parse func(string) (T, bool)) T {
	raw, ok := lookupEnv(key)
	if !ok {
		return def
	}
	if v, ok := parse(raw); ok {
		return v
	}
	return def
}

func envOrDefault(key, defaultValue string) string {
	return parsedEnv(key, defaultValue, func(raw string) (string, bool) { return raw, true })
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	return parsedEnv(key, defaultValue, func(raw string) (time.Duration, bool) {
		d, err := time.ParseDuration(raw)
		return d, err == nil && d > 0
	})
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	return parsedEnv(key, defaultValue, func(raw string) (bool, bool) {
		switch strings.ToLower(raw) {
		case "yes", "on":
			return true, true
		case "no", "off":
			return false, true
		}
		b, err := strconv.ParseBool(raw)
		return b, err == nil
	})
}
