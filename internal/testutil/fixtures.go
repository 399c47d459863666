package testutil

import (
	"encoding/json"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/live"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// SampleResultSet builds a result set whose cells are given as plain Go values.
func SampleResultSet(name string, headers []string, rows ...[]any) stats.ResultSet {
	if rows == nil {
		rows = [][]any{}
	}
	return stats.ResultSet{Name: name, Headers: headers, RowSet: rows}
}

// SampleResponse wraps result sets in a response envelope.
func SampleResponse(resource string, sets ...stats.ResultSet) stats.Response {
	return stats.Response{Resource: resource, ResultSets: sets}
}

// SamplePlayersResponse returns a commonallplayers payload with three players on two teams.
func SamplePlayersResponse() stats.Response {
	return SampleResponse(stats.EndpointCommonAllPlayers, SampleResultSet("CommonAllPlayers",
		[]string{"PERSON_ID", "DISPLAY_LAST_COMMA_FIRST", "DISPLAY_FIRST_LAST", "ROSTERSTATUS", "TEAM_ID", "TEAM_CITY", "TEAM_NAME", "TEAM_ABBREVIATION"},
		[]any{json.Number("2544"), "James, LeBron", "LeBron James", json.Number("1"), json.Number("1610612747"), "Los Angeles", "Lakers", "LAL"},
		[]any{json.Number("1630559"), "Reaves, Austin", "Austin Reaves", json.Number("1"), json.Number("1610612747"), "Los Angeles", "Lakers", "LAL"},
		[]any{json.Number("201939"), "Curry, Stephen", "Stephen Curry", json.Number("1"), json.Number("1610612744"), "Golden State", "Warriors", "GSW"},
	))
}

// SampleScheduleResponse returns leaguegamefinder rows on three distinct dates.
func SampleScheduleResponse() stats.Response {
	return SampleResponse(stats.EndpointLeagueGameFinder, SampleResultSet("LeagueGameFinderResults",
		[]string{"TEAM_ID", "GAME_ID", "GAME_DATE", "MATCHUP"},
		[]any{json.Number("1610612747"), "0022400061", "2024-10-22", "LAL vs. MIN"},
		[]any{json.Number("1610612747"), "0022400073", "2024-10-25", "LAL vs. PHX"},
		[]any{json.Number("1610612747"), "0022400090", "2024-10-28", "LAL @ CLE"},
	))
}

// SampleTeamYearsResponse returns commonteamyears rows spanning 1946 to 2024.
func SampleTeamYearsResponse() stats.Response {
	return SampleResponse(stats.EndpointCommonTeamYears, SampleResultSet("TeamYears",
		[]string{"LEAGUE_ID", "TEAM_ID", "MIN_YEAR", "MAX_YEAR", "ABBREVIATION"},
		[]any{"00", json.Number("1610612737"), "1949", "2024", "ATL"},
		[]any{"00", json.Number("1610612738"), "1946", "2024", "BOS"},
	))
}

// SampleScoreboard returns a live scoreboard with a single in-progress game.
func SampleScoreboard(date string) live.Scoreboard {
	return live.Scoreboard{
		GameDate:   date,
		LeagueID:   "00",
		LeagueName: "National Basketball Association",
		Games: []map[string]any{
			{"gameId": "0022400061", "gameStatus": json.Number("2"), "gameStatusText": "Q3 5:12"},
		},
	}
}
