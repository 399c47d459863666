package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/live"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchStats(ctx context.Context, req stats.Request) (stats.Response, error) {
	return stats.Response{}, p.Err
}

func (p ErrProvider) FetchLiveScoreboard(ctx context.Context) (live.Scoreboard, error) {
	return live.Scoreboard{}, p.Err
}

// EmptyProvider returns empty payloads, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchStats(ctx context.Context, req stats.Request) (stats.Response, error) {
	return stats.Response{Resource: req.Endpoint}, nil
}

func (EmptyProvider) FetchLiveScoreboard(ctx context.Context) (live.Scoreboard, error) {
	return live.Scoreboard{Games: []map[string]any{}}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchStats(ctx context.Context, req stats.Request) (stats.Response, error) {
	return stats.Response{}, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchLiveScoreboard(ctx context.Context) (live.Scoreboard, error) {
	return live.Scoreboard{}, providers.ErrProviderUnavailable
}
