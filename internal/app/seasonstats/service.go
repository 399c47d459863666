package seasonstats

import (
	"context"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// Query selects one league-wide dashboard.
type Query struct {
	LeagueID   string
	Season     string
	SeasonType string
	PerMode    string
}

// Service fetches league dashboard stats for players and teams.
type Service struct {
	provider providers.StatsProvider
}

// NewService constructs a Service backed by the given provider.
func NewService(provider providers.StatsProvider) *Service {
	return &Service{provider: provider}
}

// PlayerStats returns per-player totals or averages for a season.
func (s *Service) PlayerStats(ctx context.Context, q Query) (stats.NormalizedDict, error) {
	params := dashboardParams(q)
	for _, key := range []string{
		"College", "Country", "DraftPick", "DraftYear", "Height", "PlayerExperience",
		"PlayerPosition", "StarterBench", "TwoWay", "Weight",
	} {
		params[key] = ""
	}
	return s.fetch(ctx, stats.EndpointLeagueDashPlayerStats, params)
}

// TeamStats returns per-team totals or averages for a season.
func (s *Service) TeamStats(ctx context.Context, q Query) (stats.NormalizedDict, error) {
	return s.fetch(ctx, stats.EndpointLeagueDashTeamStats, dashboardParams(q))
}

func (s *Service) fetch(ctx context.Context, endpoint string, params stats.Params) (stats.NormalizedDict, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(endpoint, params))
	if err != nil {
		return nil, err
	}
	return resp.Normalize(), nil
}

// dashboardParams lists every key the leaguedash endpoints expect. Zero
// values mean "no filter" upstream.
func dashboardParams(q Query) stats.Params {
	return stats.Params{
		"LeagueID":       q.LeagueID,
		"Season":         q.Season,
		"SeasonType":     q.SeasonType,
		"PerMode":        q.PerMode,
		"MeasureType":    "Base",
		"LastNGames":     "0",
		"Month":          "0",
		"OpponentTeamID": "0",
		"Period":         "0",
		"PaceAdjust":     "N",
		"PlusMinus":      "N",
		"Rank":           "N",
		"Conference":     "",
		"DateFrom":       "",
		"DateTo":         "",
		"Division":       "",
		"GameScope":      "",
		"GameSegment":    "",
		"Location":       "",
		"Outcome":        "",
		"PORound":        "",
		"SeasonSegment":  "",
		"ShotClockRange": "",
		"TeamID":         "",
		"VsConference":   "",
		"VsDivision":     "",
	}
}
