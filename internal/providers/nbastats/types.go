package nbastats

import "github.com/preston-bernstein/nba-stats-service/internal/domain/live"

type liveScoreboardResponse struct {
	Scoreboard live.Scoreboard `json:"scoreboard"`
}
