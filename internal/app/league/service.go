package league

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nba-stats-service/internal/app/defaults"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/league"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/timeutil"
)

// StandingsQuery selects one season's standings.
type StandingsQuery struct {
	LeagueID   string
	Season     string
	SeasonType string
}

// Service serves league-wide tables: standings and the season list.
type Service struct {
	provider providers.StatsProvider
	defaults defaults.Resolver
}

// NewService constructs a Service backed by the given provider.
func NewService(provider providers.StatsProvider, resolver defaults.Resolver) *Service {
	return &Service{provider: provider, defaults: resolver}
}

// Standings returns the normalized leaguestandingsv3 result sets.
func (s *Service) Standings(ctx context.Context, q StandingsQuery) (stats.NormalizedDict, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(stats.EndpointLeagueStandingsV3, stats.Params{
		"LeagueID":   q.LeagueID,
		"Season":     q.Season,
		"SeasonType": q.SeasonType,
		"SeasonYear": "",
	}))
	if err != nil {
		return nil, err
	}
	return resp.Normalize(), nil
}

type teamYearsRow struct {
	MinYear int `mapstructure:"MIN_YEAR"`
	MaxYear int `mapstructure:"MAX_YEAR"`
}

// Seasons lists every season from the oldest franchise's first year to the
// latest active year, newest first.
func (s *Service) Seasons(ctx context.Context, leagueID string) (league.SeasonsResponse, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(stats.EndpointCommonTeamYears, stats.Params{
		"LeagueID": leagueID,
	}))
	if err != nil {
		return league.SeasonsResponse{}, err
	}

	var rows []teamYearsRow
	if err := stats.DecodeRows(resp.FirstRows(), &rows); err != nil {
		return league.SeasonsResponse{}, fmt.Errorf("seasons: %w", err)
	}

	current := s.defaults.Season()
	out := league.SeasonsResponse{Current: current, Seasons: []league.Season{}}
	if len(rows) == 0 {
		return out, nil
	}

	first, last := rows[0].MinYear, rows[0].MaxYear
	for _, row := range rows[1:] {
		if row.MinYear > 0 && (first == 0 || row.MinYear < first) {
			first = row.MinYear
		}
		if row.MaxYear > last {
			last = row.MaxYear
		}
	}
	if first == 0 || last < first {
		return out, nil
	}

	for year := last; year >= first; year-- {
		out.Seasons = append(out.Seasons, league.Season{Season: timeutil.SeasonLabel(year), StartYear: year})
	}
	return out, nil
}
