package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultLiveBaseURL = "https://cdn.nba.com/static/json/liveData"
	liveScoreboardPath = "/scoreboard/todaysScoreboard_00.json"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Upstream error bodies are HTML pages more often than not.
	maxErrorBody = 512
)
