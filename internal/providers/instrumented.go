package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/live"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
)

const liveScoreboardEndpoint = "todaysScoreboard"

// instrumentedProvider wraps a DataProvider with per-call logging and metrics.
// Failures pass through untouched.
type instrumentedProvider struct {
	inner   DataProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner so every upstream call is timed, logged and counted.
func NewInstrumentedProvider(inner DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchStats(ctx context.Context, req stats.Request) (stats.Response, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return stats.Response{}, ErrProviderUnavailable
	}
	start := p.now()
	resp, err := p.inner.FetchStats(ctx, req)
	p.observe(ctx, req.Endpoint, p.now().Sub(start), err)
	return resp, err
}

func (p *instrumentedProvider) FetchLiveScoreboard(ctx context.Context) (live.Scoreboard, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return live.Scoreboard{}, ErrProviderUnavailable
	}
	start := p.now()
	board, err := p.inner.FetchLiveScoreboard(ctx)
	p.observe(ctx, liveScoreboardEndpoint, p.now().Sub(start), err)
	return board, err
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, elapsed time.Duration, err error) {
	p.metrics.RecordProviderCall(p.name, endpoint, elapsed, err)

	args := []any{
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if err == nil {
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "upstream call", args...)
		return
	}

	if upErr, ok := AsUpstreamError(err); ok {
		args = append(args, slog.Int(logging.FieldStatusCode, upErr.StatusCode))
		if upErr.RateLimited() {
			p.metrics.RecordRateLimit(p.name, upErr.RetryAfter)
			args = append(args, slog.Duration("retry_after", upErr.RetryAfter))
		}
	}
	args = append(args, slog.Any("error", err))
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "upstream call failed", args...)
}
