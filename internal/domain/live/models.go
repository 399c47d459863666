package live

// Scoreboard is today's live scoreboard from the NBA live data feed.
// Games are passed through as delivered upstream.
type Scoreboard struct {
	GameDate   string           `json:"gameDate"`
	LeagueID   string           `json:"leagueId"`
	LeagueName string           `json:"leagueName"`
	Games      []map[string]any `json:"games"`
}
