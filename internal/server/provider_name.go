package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

type namedProvider interface {
	Name() string
}

// providerName returns the name a provider reports under in logs and metrics.
// A provider's own name wins over the configured value, so a fallback is
// never reported under the name that was asked for.
func providerName(configured string, provider providers.DataProvider) string {
	if named, ok := provider.(namedProvider); ok && named.Name() != "" {
		return named.Name()
	}
	if configured != "" {
		return strings.ToLower(configured)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
