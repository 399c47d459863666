package providers

import (
	"context"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/live"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// StatsProvider fetches a raw result-set response from a stats endpoint.
// Parameters are forwarded as given; providers do not apply defaults.
type StatsProvider interface {
	FetchStats(ctx context.Context, req stats.Request) (stats.Response, error)
}

// LiveProvider fetches today's live scoreboard.
type LiveProvider interface {
	FetchLiveScoreboard(ctx context.Context) (live.Scoreboard, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	StatsProvider
	LiveProvider
}
