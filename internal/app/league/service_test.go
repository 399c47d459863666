package league

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/app/defaults"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/teststubs"
	"github.com/preston-bernstein/nba-stats-service/internal/testutil"
)

func resolverAt(ts time.Time) defaults.Resolver {
	return defaults.NewResolver("", "00", "UTC").WithClock(testutil.NowAt(ts))
}

func TestStandingsForwardsQuery(t *testing.T) {
	stub := &teststubs.StubProvider{Responses: map[string]stats.Response{
		stats.EndpointLeagueStandingsV3: testutil.SampleResponse("leaguestandingsv3",
			testutil.SampleResultSet("Standings", []string{"TeamID", "WINS"}, []any{1610612738, 61})),
	}}
	svc := NewService(stub, defaults.Resolver{})

	dict, err := svc.Standings(context.Background(), StandingsQuery{LeagueID: "00", Season: "2023-24", SeasonType: "Regular Season"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dict["Standings"]) != 1 {
		t.Fatalf("expected standings rows, got %+v", dict)
	}
	req := stub.LastRequest()
	if req.Param("LeagueID") != "00" || req.Param("Season") != "2023-24" || req.Param("SeasonType") != "Regular Season" {
		t.Fatalf("unexpected params %+v", req.Params)
	}
	if _, ok := req.Params["SeasonYear"]; !ok {
		t.Fatalf("expected SeasonYear key to be sent")
	}
}

func TestSeasonsNewestFirst(t *testing.T) {
	stub := &teststubs.StubProvider{Responses: map[string]stats.Response{
		stats.EndpointCommonTeamYears: testutil.SampleTeamYearsResponse(),
	}}
	svc := NewService(stub, resolverAt(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)))

	out, err := svc.Seasons(context.Background(), "00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Current != "2024-25" {
		t.Fatalf("expected current season 2024-25, got %s", out.Current)
	}
	if len(out.Seasons) != 2024-1946+1 {
		t.Fatalf("expected %d seasons, got %d", 2024-1946+1, len(out.Seasons))
	}
	if out.Seasons[0].Season != "2024-25" || out.Seasons[len(out.Seasons)-1].Season != "1946-47" {
		t.Fatalf("unexpected ordering %v ... %v", out.Seasons[0], out.Seasons[len(out.Seasons)-1])
	}
	if stub.LastRequest().Param("LeagueID") != "00" {
		t.Fatalf("expected league id forwarded")
	}
}

func TestSeasonsEmptyResponse(t *testing.T) {
	svc := NewService(testutil.EmptyProvider{}, resolverAt(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))

	out, err := svc.Seasons(context.Background(), "00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Seasons == nil || len(out.Seasons) != 0 {
		t.Fatalf("expected empty seasons, got %#v", out.Seasons)
	}
	if out.Current != "2024-25" {
		t.Fatalf("expected current season, got %s", out.Current)
	}
}

func TestLeagueServicePropagatesErrors(t *testing.T) {
	svc := NewService(testutil.ErrProvider{Err: errors.New("boom")}, defaults.Resolver{})
	if _, err := svc.Standings(context.Background(), StandingsQuery{}); err == nil {
		t.Fatalf("expected standings error")
	}
	if _, err := svc.Seasons(context.Background(), "00"); err == nil {
		t.Fatalf("expected seasons error")
	}
}
