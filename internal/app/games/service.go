package games

import (
	"context"
	"strconv"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// scheduleDateColumn holds the YYYY-MM-DD game date in leaguegamefinder rows.
const scheduleDateColumn = "GAME_DATE"

// ScheduleQuery selects team games for a season, optionally bounded by date.
type ScheduleQuery struct {
	LeagueID  string
	Season    string
	TeamID    string
	StartDate string
	EndDate   string
}

// ScoreboardQuery selects the games on one calendar day.
type ScoreboardQuery struct {
	LeagueID  string
	DayOffset int
	GameDate  string
}

// Service coordinates game lookups: live scores, box scores, schedules and daily scoreboards.
type Service struct {
	provider providers.DataProvider
}

// NewService constructs a Service backed by the given provider.
func NewService(provider providers.DataProvider) *Service {
	return &Service{provider: provider}
}

// LiveGames returns today's games from the live scoreboard.
func (s *Service) LiveGames(ctx context.Context) ([]map[string]any, error) {
	board, err := s.provider.FetchLiveScoreboard(ctx)
	if err != nil {
		return nil, err
	}
	if board.Games == nil {
		return []map[string]any{}, nil
	}
	return board.Games, nil
}

// BoxScore returns the traditional box score for a full game.
func (s *Service) BoxScore(ctx context.Context, gameID string) (stats.NormalizedDict, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(stats.EndpointBoxScoreTraditionalV2, stats.Params{
		"GameID":      gameID,
		"StartPeriod": "0",
		"EndPeriod":   "0",
		"StartRange":  "0",
		"EndRange":    "0",
		"RangeType":   "0",
	}))
	if err != nil {
		return nil, err
	}
	return resp.Normalize(), nil
}

// Schedule returns the first result set's rows whose game date falls within
// [StartDate, EndDate]. Either bound may be empty.
func (s *Service) Schedule(ctx context.Context, q ScheduleQuery) ([]stats.Row, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(stats.EndpointLeagueGameFinder, stats.Params{
		"PlayerOrTeam": "T",
		"LeagueID":     q.LeagueID,
		"Season":       q.Season,
		"TeamID":       q.TeamID,
		"SeasonType":   "",
		"DateFrom":     "",
		"DateTo":       "",
		"GameID":       "",
		"PlayerID":     "",
		"VsTeamID":     "",
	}))
	if err != nil {
		return nil, err
	}

	rows := resp.FirstRows()
	if q.StartDate == "" && q.EndDate == "" {
		return rows, nil
	}

	filtered := make([]stats.Row, 0, len(rows))
	for _, row := range rows {
		date, ok := row.String(scheduleDateColumn)
		if !ok {
			continue
		}
		if q.StartDate != "" && date < q.StartDate {
			continue
		}
		if q.EndDate != "" && date > q.EndDate {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered, nil
}

// Scoreboard returns the normalized scoreboardv2 result sets for a date.
func (s *Service) Scoreboard(ctx context.Context, q ScoreboardQuery) (stats.NormalizedDict, error) {
	resp, err := s.provider.FetchStats(ctx, stats.NewRequest(stats.EndpointScoreboardV2, stats.Params{
		"GameDate":  q.GameDate,
		"LeagueID":  q.LeagueID,
		"DayOffset": strconv.Itoa(q.DayOffset),
	}))
	if err != nil {
		return nil, err
	}
	return resp.Normalize(), nil
}
