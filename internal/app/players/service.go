package players

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nba-stats-service/internal/app/defaults"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// Filter narrows the active player list. Empty fields match everything.
type Filter struct {
	TeamID string
	Name   string
}

// Service coordinates player lookups against the stats provider.
type Service struct {
	provider providers.StatsProvider
	defaults defaults.Resolver
}

// NewService constructs a Service backed by the given provider.
func NewService(provider providers.StatsProvider, resolver defaults.Resolver) *Service {
	return &Service{provider: provider, defaults: resolver}
}

type playerRow struct {
	PersonID         int    `mapstructure:"PERSON_ID"`
	DisplayFirstLast string `mapstructure:"DISPLAY_FIRST_LAST"`
	DisplayLastFirst string `mapstructure:"DISPLAY_LAST_COMMA_FIRST"`
	RosterStatus     int    `mapstructure:"ROSTERSTATUS"`
	TeamID           int    `mapstructure:"TEAM_ID"`
	TeamAbbreviation string `mapstructure:"TEAM_ABBREVIATION"`
	TeamCity         string `mapstructure:"TEAM_CITY"`
	TeamName         string `mapstructure:"TEAM_NAME"`
}

func (r playerRow) toPlayer() players.Player {
	first, last := players.SplitLastFirst(r.DisplayLastFirst)
	return players.Player{
		ID:               r.PersonID,
		FullName:         r.DisplayFirstLast,
		FirstName:        first,
		LastName:         last,
		IsActive:         r.RosterStatus != 0,
		TeamID:           r.TeamID,
		TeamAbbreviation: r.TeamAbbreviation,
		TeamCity:         r.TeamCity,
		TeamName:         r.TeamName,
	}
}

// ActivePlayers lists current-season players with an active roster status
// that match the filter.
func (s *Service) ActivePlayers(ctx context.Context, filter Filter) ([]players.Player, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(stats.EndpointCommonAllPlayers, stats.Params{
		"LeagueID":            s.defaults.LeagueID(),
		"Season":              s.defaults.Season(),
		"IsOnlyCurrentSeason": "1",
	}))
	if err != nil {
		return nil, err
	}

	var rows []playerRow
	if err := stats.DecodeRows(resp.FirstRows(), &rows); err != nil {
		return nil, fmt.Errorf("players: %w", err)
	}

	result := make([]players.Player, 0, len(rows))
	for _, row := range rows {
		p := row.toPlayer()
		if !p.IsActive {
			continue
		}
		if filter.TeamID != "" && !p.OnTeam(filter.TeamID) {
			continue
		}
		if filter.Name != "" && !p.NameContains(filter.Name) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// PlayerInfo returns the normalized commonplayerinfo result sets for one player.
func (s *Service) PlayerInfo(ctx context.Context, playerID string) (stats.NormalizedDict, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(stats.EndpointCommonPlayerInfo, stats.Params{
		"PlayerID": playerID,
		"LeagueID": "",
	}))
	if err != nil {
		return nil, err
	}
	return resp.Normalize(), nil
}

// PlayerAwards returns the normalized award history for one player.
func (s *Service) PlayerAwards(ctx context.Context, playerID string) (stats.NormalizedDict, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(stats.EndpointPlayerAwards, stats.Params{
		"PlayerID": playerID,
	}))
	if err != nil {
		return nil, err
	}
	return resp.Normalize(), nil
}
