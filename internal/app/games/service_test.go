package games

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/live"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/teststubs"
	"github.com/preston-bernstein/nba-stats-service/internal/testutil"
)

func TestLiveGamesReturnsScoreboardGames(t *testing.T) {
	stub := &teststubs.StubProvider{Scoreboard: testutil.SampleScoreboard("2024-10-22")}
	svc := NewService(stub)

	games, err := svc.LiveGames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 || games[0]["gameId"] != "0022400061" {
		t.Fatalf("unexpected games %+v", games)
	}
}

func TestLiveGamesNeverNil(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{Scoreboard: live.Scoreboard{}})
	games, err := svc.LiveGames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if games == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestBoxScoreSendsFullGameRange(t *testing.T) {
	stub := &teststubs.StubProvider{Responses: map[string]stats.Response{
		stats.EndpointBoxScoreTraditionalV2: testutil.SampleResponse("boxscore",
			testutil.SampleResultSet("PlayerStats", []string{"PLAYER_ID", "PTS"}, []any{2544, 16}),
			testutil.SampleResultSet("TeamStats", []string{"TEAM_ID", "PTS"}, []any{1610612747, 110})),
	}}
	svc := NewService(stub)

	dict, err := svc.BoxScore(context.Background(), "0022400061")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dict["PlayerStats"]) != 1 || len(dict["TeamStats"]) != 1 {
		t.Fatalf("unexpected box score %+v", dict)
	}
	req := stub.LastRequest()
	if req.Param("GameID") != "0022400061" || req.Param("RangeType") != "0" || req.Param("EndPeriod") != "0" {
		t.Fatalf("unexpected params %+v", req.Params)
	}
}

func TestScheduleFiltersInclusiveDateRange(t *testing.T) {
	stub := &teststubs.StubProvider{Responses: map[string]stats.Response{
		stats.EndpointLeagueGameFinder: testutil.SampleScheduleResponse(),
	}}
	svc := NewService(stub)

	rows, err := svc.Schedule(context.Background(), ScheduleQuery{
		LeagueID:  "00",
		Season:    "2024-25",
		TeamID:    "1610612747",
		StartDate: "2024-10-22",
		EndDate:   "2024-10-25",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected both boundary dates to be kept, got %d rows", len(rows))
	}
	if rows[0]["GAME_DATE"] != "2024-10-22" || rows[1]["GAME_DATE"] != "2024-10-25" {
		t.Fatalf("unexpected rows %+v", rows)
	}

	req := stub.LastRequest()
	if req.Param("PlayerOrTeam") != "T" || req.Param("TeamID") != "1610612747" || req.Param("Season") != "2024-25" {
		t.Fatalf("unexpected params %+v", req.Params)
	}
}

func TestScheduleOpenEndedBounds(t *testing.T) {
	stub := &teststubs.StubProvider{Responses: map[string]stats.Response{
		stats.EndpointLeagueGameFinder: testutil.SampleScheduleResponse(),
	}}
	svc := NewService(stub)

	rows, err := svc.Schedule(context.Background(), ScheduleQuery{StartDate: "2024-10-23"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected rows on or after start date, got %d", len(rows))
	}

	rows, err = svc.Schedule(context.Background(), ScheduleQuery{})
	if err != nil || len(rows) != 3 {
		t.Fatalf("expected unfiltered rows, got %d (err=%v)", len(rows), err)
	}
}

func TestScheduleEmptyResultIsNotNil(t *testing.T) {
	svc := NewService(testutil.EmptyProvider{})
	rows, err := svc.Schedule(context.Background(), ScheduleQuery{StartDate: "2024-01-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", rows)
	}
}

func TestScoreboardForwardsDateAndOffset(t *testing.T) {
	stub := &teststubs.StubProvider{}
	svc := NewService(stub)

	if _, err := svc.Scoreboard(context.Background(), ScoreboardQuery{LeagueID: "00", DayOffset: -1, GameDate: "2024-10-22"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := stub.LastRequest()
	if req.Endpoint != stats.EndpointScoreboardV2 || req.Param("DayOffset") != "-1" || req.Param("GameDate") != "2024-10-22" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestGamesServicePropagatesErrors(t *testing.T) {
	svc := NewService(testutil.ErrProvider{Err: errors.New("boom")})
	ctx := context.Background()
	if _, err := svc.LiveGames(ctx); err == nil {
		t.Fatalf("expected live error")
	}
	if _, err := svc.BoxScore(ctx, "1"); err == nil {
		t.Fatalf("expected box score error")
	}
	if _, err := svc.Schedule(ctx, ScheduleQuery{}); err == nil {
		t.Fatalf("expected schedule error")
	}
	if _, err := svc.Scoreboard(ctx, ScoreboardQuery{}); err == nil {
		t.Fatalf("expected scoreboard error")
	}
}
