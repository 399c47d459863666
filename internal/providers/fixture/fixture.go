package fixture

import (
	"context"
	"embed"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/live"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/timeutil"
)

//go:embed data/*.json
var dataFS embed.FS

const liveScoreboardFile = "data/todaysScoreboard.json"

var jsonAPI = jsoniter.Config{UseNumber: true}.Froze()

// Provider serves canned upstream payloads for local development and tests.
// Parameters are ignored; every endpoint returns the same snapshot.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return "fixture" }

// FetchStats returns the embedded response for the requested endpoint.
func (p *Provider) FetchStats(ctx context.Context, req stats.Request) (stats.Response, error) {
	if err := ctx.Err(); err != nil {
		return stats.Response{}, err
	}

	raw, err := dataFS.ReadFile("data/" + req.Endpoint + ".json")
	if err != nil {
		return stats.Response{}, fmt.Errorf("fixture: no data for endpoint %q", req.Endpoint)
	}
	var resp stats.Response
	if err := jsonAPI.Unmarshal(raw, &resp); err != nil {
		return stats.Response{}, fmt.Errorf("fixture: decode %s: %w", req.Endpoint, err)
	}
	return resp, nil
}

// FetchLiveScoreboard returns the embedded scoreboard dated today.
func (p *Provider) FetchLiveScoreboard(ctx context.Context) (live.Scoreboard, error) {
	if err := ctx.Err(); err != nil {
		return live.Scoreboard{}, err
	}

	raw, err := dataFS.ReadFile(liveScoreboardFile)
	if err != nil {
		return live.Scoreboard{}, err
	}
	var payload struct {
		Scoreboard live.Scoreboard `json:"scoreboard"`
	}
	if err := jsonAPI.Unmarshal(raw, &payload); err != nil {
		return live.Scoreboard{}, fmt.Errorf("fixture: decode scoreboard: %w", err)
	}
	payload.Scoreboard.GameDate = timeutil.FormatDate(p.now().UTC())
	return payload.Scoreboard, nil
}
