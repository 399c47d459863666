// Package defaults resolves the values applied when a caller omits season,
// league or date parameters.
package defaults

import (
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/timeutil"
)

const (
	LeagueID   = "00"
	SeasonType = "Regular Season"
	PerMode    = "Totals"
)

// Resolver computes request-time defaults. A zero Resolver derives the
// season from the wall clock in UTC and uses league 00.
type Resolver struct {
	season   string
	leagueID string
	loc      *time.Location
	now      func() time.Time
}

// NewResolver builds a Resolver. An empty season means "current season".
func NewResolver(season, leagueID, timezone string) Resolver {
	return Resolver{
		season:   season,
		leagueID: leagueID,
		loc:      timeutil.ResolveLocation(timezone),
		now:      time.Now,
	}
}

// WithClock returns a copy of r that reads time from now.
func (r Resolver) WithClock(now func() time.Time) Resolver {
	r.now = now
	return r
}

// Season returns the configured season or the one in effect today.
func (r Resolver) Season() string {
	if r.season != "" {
		return r.season
	}
	return timeutil.CurrentSeason(r.Now())
}

// LeagueID returns the configured league id, defaulting to the NBA.
func (r Resolver) LeagueID() string {
	if r.leagueID != "" {
		return r.leagueID
	}
	return LeagueID
}

// Today returns today's date (YYYY-MM-DD) in the configured timezone.
func (r Resolver) Today() string {
	return timeutil.FormatDate(r.Now())
}

// Now returns the current time in the configured timezone.
func (r Resolver) Now() time.Time {
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	loc := r.loc
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}
