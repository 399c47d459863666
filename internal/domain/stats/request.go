package stats

import "net/url"

// Upstream endpoint names under stats.nba.com/stats/.
const (
	EndpointCommonAllPlayers      = "commonallplayers"
	EndpointCommonPlayerInfo      = "commonplayerinfo"
	EndpointPlayerAwards          = "playerawards"
	EndpointLeagueDashPlayerStats = "leaguedashplayerstats"
	EndpointLeagueDashTeamStats   = "leaguedashteamstats"
	EndpointBoxScoreTraditionalV2 = "boxscoretraditionalv2"
	EndpointLeagueStandingsV3     = "leaguestandingsv3"
	EndpointLeagueGameFinder      = "leaguegamefinder"
	EndpointScoreboardV2          = "scoreboardv2"
	EndpointCommonTeamYears       = "commonteamyears"
)

// Params holds upstream query parameters. Empty values are still sent;
// stats.nba.com rejects requests that omit expected keys.
type Params map[string]string

// Request is one call to a stats.nba.com endpoint.
type Request struct {
	Endpoint string
	Params   Params
}

// NewRequest builds a Request, copying params so callers can reuse their map.
func NewRequest(endpoint string, params Params) Request {
	copied := make(Params, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return Request{Endpoint: endpoint, Params: copied}
}

// Param returns a single parameter value.
func (r Request) Param(key string) string {
	return r.Params[key]
}

// Query encodes the parameters for the upstream URL.
func (r Request) Query() url.Values {
	q := make(url.Values, len(r.Params))
	for k, v := range r.Params {
		q.Set(k, v)
	}
	return q
}
