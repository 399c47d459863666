package players

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/app/defaults"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/teststubs"
	"github.com/preston-bernstein/nba-stats-service/internal/testutil"
)

func newStub() *teststubs.StubProvider {
	return &teststubs.StubProvider{Responses: map[string]stats.Response{
		stats.EndpointCommonAllPlayers: testutil.SamplePlayersResponse(),
	}}
}

func TestActivePlayersDecodesRows(t *testing.T) {
	stub := newStub()
	resolver := defaults.NewResolver("", "00", "UTC").WithClock(testutil.NowAt(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	svc := NewService(stub, resolver)

	items, err := svc.ActivePlayers(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 players, got %d", len(items))
	}
	first := items[0]
	if first.ID != 2544 || first.FullName != "LeBron James" || first.FirstName != "LeBron" || first.LastName != "James" {
		t.Fatalf("unexpected player %+v", first)
	}
	if !first.IsActive || first.TeamID != 1610612747 || first.TeamAbbreviation != "LAL" {
		t.Fatalf("unexpected team fields %+v", first)
	}

	req := stub.LastRequest()
	if req.Param("IsOnlyCurrentSeason") != "1" || req.Param("Season") != "2024-25" || req.Param("LeagueID") != "00" {
		t.Fatalf("unexpected params %+v", req.Params)
	}
}

func TestActivePlayersFilters(t *testing.T) {
	svc := NewService(newStub(), defaults.Resolver{})

	byTeam, err := svc.ActivePlayers(context.Background(), Filter{TeamID: "1610612747"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byTeam) != 2 {
		t.Fatalf("expected 2 lakers, got %d", len(byTeam))
	}

	byName, _ := svc.ActivePlayers(context.Background(), Filter{Name: "cUrRy"})
	if len(byName) != 1 || byName[0].ID != 201939 {
		t.Fatalf("expected case-insensitive name match, got %+v", byName)
	}

	both, _ := svc.ActivePlayers(context.Background(), Filter{TeamID: "1610612747", Name: "curry"})
	if both == nil || len(both) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", both)
	}
}

func TestActivePlayersSkipsInactiveRoster(t *testing.T) {
	resp := testutil.SampleResponse(stats.EndpointCommonAllPlayers, testutil.SampleResultSet("CommonAllPlayers",
		[]string{"PERSON_ID", "DISPLAY_LAST_COMMA_FIRST", "DISPLAY_FIRST_LAST", "ROSTERSTATUS", "TEAM_ID"},
		[]any{json.Number("1"), "Agent, Free", "Free Agent", json.Number("0"), json.Number("0")},
		[]any{json.Number("2544"), "James, LeBron", "LeBron James", json.Number("1"), json.Number("1610612747")},
		[]any{json.Number("3"), "Signed, Not", "Not Signed", "", json.Number("0")},
	))
	stub := &teststubs.StubProvider{Responses: map[string]stats.Response{stats.EndpointCommonAllPlayers: resp}}
	svc := NewService(stub, defaults.Resolver{})

	all, err := svc.ActivePlayers(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 || all[0].ID != 2544 {
		t.Fatalf("expected only the active player, got %+v", all)
	}

	unattached, _ := svc.ActivePlayers(context.Background(), Filter{TeamID: "0"})
	if unattached == nil || len(unattached) != 0 {
		t.Fatalf("expected inactive players hidden from team filter, got %#v", unattached)
	}
}

func TestPlayerInfoAndAwards(t *testing.T) {
	stub := &teststubs.StubProvider{Responses: map[string]stats.Response{
		stats.EndpointCommonPlayerInfo: testutil.SampleResponse("commonplayerinfo",
			testutil.SampleResultSet("CommonPlayerInfo", []string{"PERSON_ID"}, []any{2544}),
			testutil.SampleResultSet("AvailableSeasons", []string{"SEASON_ID"}, []any{"22024"})),
		stats.EndpointPlayerAwards: testutil.SampleResponse("playerawards",
			testutil.SampleResultSet("PlayerAwards", []string{"DESCRIPTION"}, []any{"NBA Most Valuable Player"})),
	}}
	svc := NewService(stub, defaults.Resolver{})

	info, err := svc.PlayerInfo(context.Background(), "2544")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(info) != 2 || len(info["CommonPlayerInfo"]) != 1 {
		t.Fatalf("unexpected info %+v", info)
	}
	if stub.LastRequest().Param("PlayerID") != "2544" {
		t.Fatalf("expected player id forwarded")
	}

	awards, err := svc.PlayerAwards(context.Background(), "2544")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awards["PlayerAwards"][0]["DESCRIPTION"] != "NBA Most Valuable Player" {
		t.Fatalf("unexpected awards %+v", awards)
	}
}

func TestPlayersServicePropagatesErrors(t *testing.T) {
	svc := NewService(testutil.ErrProvider{Err: errors.New("boom")}, defaults.Resolver{})
	ctx := context.Background()
	if _, err := svc.ActivePlayers(ctx, Filter{}); err == nil {
		t.Fatalf("expected players error")
	}
	if _, err := svc.PlayerInfo(ctx, "1"); err == nil {
		t.Fatalf("expected info error")
	}
	if _, err := svc.PlayerAwards(ctx, "1"); err == nil {
		t.Fatalf("expected awards error")
	}
}
